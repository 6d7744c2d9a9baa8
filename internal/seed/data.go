package seed

import "github.com/BruksfildServices01/lawfirm-api/internal/models"

func strPtr(s string) *string { return &s }

func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:  "Priya Sharma",
			Role:  "Family Law Client",
			Image: strPtr("/images/indian-client-1.jpg"),
			Text:  "B Sruti provided exceptional guidance during my divorce proceedings. Her expertise and compassion made a difficult time much easier to navigate. I couldn't have asked for better representation.",
		},
		{
			Name:  "Rajesh Patel",
			Role:  "Business Client",
			Image: strPtr("/images/indian-client-2.jpg"),
			Text:  "As a small business owner, I needed clear legal advice. B Sruti delivered excellent service and continues to be our trusted advisor. Her strategic approach has saved us from numerous legal complications.",
		},
		{
			Name:  "Ananya Desai",
			Role:  "Civil Law Client",
			Image: strPtr("/images/indian-client-3.jpg"),
			Text:  "B Sruti's attention to detail and strategic approach helped me win my case. I highly recommend her services to anyone needing legal representation. She's simply the best in the business.",
		},
	}
}

func PracticeAreas() []models.PracticeArea {
	return []models.PracticeArea{
		{
			Title:       "Civil Law",
			Description: "Resolution of disputes between individuals, organizations, or government entities.",
			Icon:        strPtr("Scale"),
			Link:        "/practice-areas#civil-law",
		},
		{
			Title:       "Criminal Law",
			Description: "Defending individuals charged with criminal offenses to protect their rights.",
			Icon:        strPtr("Shield"),
			Link:        "/practice-areas#criminal-law",
		},
		{
			Title:       "Family Law",
			Description: "Legal matters involving family relationships, including divorce and custody.",
			Icon:        strPtr("FileText"),
			Link:        "/practice-areas#family-law",
		},
		{
			Title:       "Legal Opinion",
			Description: "Expert legal analysis and advice on specific legal questions and situations.",
			Icon:        strPtr("FileText"),
			Link:        "/practice-areas#legal-opinion",
		},
		{
			Title:       "Mediation",
			Description: "Alternative dispute resolution to help parties reach mutually acceptable agreements.",
			Icon:        strPtr("MessageSquare"),
			Link:        "/practice-areas#mediation",
		},
		{
			Title:       "Legal Agreement",
			Description: "Drafting and reviewing contracts and agreements to protect your interests.",
			Icon:        strPtr("FileText"),
			Link:        "/practice-areas#legal-agreement",
		},
	}
}
