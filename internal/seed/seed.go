// Package seed loads the example testimonials and practice areas shown on the
// marketing site. Each table is only filled when it is empty, so running it
// again is harmless.
package seed

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/domain/content"
)

type Result struct {
	TestimonialsSeeded  int `json:"testimonialsSeeded"`
	PracticeAreasSeeded int `json:"practiceAreasSeeded"`
}

type Seeder struct {
	testimonials  content.TestimonialRepository
	practiceAreas content.PracticeAreaRepository
	logger        logrus.FieldLogger
}

func NewSeeder(
	testimonials content.TestimonialRepository,
	practiceAreas content.PracticeAreaRepository,
	logger logrus.FieldLogger,
) *Seeder {
	return &Seeder{
		testimonials:  testimonials,
		practiceAreas: practiceAreas,
		logger:        logger,
	}
}

func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	n, err := s.testimonials.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to count testimonials: %w", err)
	}
	if n == 0 {
		items := Testimonials()
		if err := s.testimonials.InsertMany(ctx, items); err != nil {
			return res, fmt.Errorf("failed to seed testimonials: %w", err)
		}
		res.TestimonialsSeeded = len(items)
		s.logger.WithField("count", len(items)).Info("Testimonials seeded")
	}

	n, err = s.practiceAreas.Count(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to count practice areas: %w", err)
	}
	if n == 0 {
		items := PracticeAreas()
		if err := s.practiceAreas.InsertMany(ctx, items); err != nil {
			return res, fmt.Errorf("failed to seed practice areas: %w", err)
		}
		res.PracticeAreasSeeded = len(items)
		s.logger.WithField("count", len(items)).Info("Practice areas seeded")
	}

	return res, nil
}
