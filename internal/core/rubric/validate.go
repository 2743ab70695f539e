package rubric

import (
	"fmt"

	"github.com/example/monitoreo/internal/models"
)

// ValidationResult reports whether a rubric is complete. When not complete
// it names the first unanswered aspect in template order.
type ValidationResult struct {
	Complete   bool
	Dimension  string
	AspectCode string
}

// Error converts the result to an error if the rubric is incomplete.
func (r ValidationResult) Error() error {
	if r.Complete {
		return nil
	}
	return fmt.Errorf("aspecto %s sin responder (desempeño: %s)", r.AspectCode, r.Dimension)
}

// Validate walks every dimension and aspect in fixed template order and
// stops at the first unanswered one. Teacher aspects are answered when
// Points > 0, director aspects when Cumple is set.
func Validate(kind Kind, performances []models.Performance) ValidationResult {
	for _, p := range performances {
		for _, a := range p.Aspectos {
			if !answered(kind, a) {
				return ValidationResult{Dimension: p.Desempenio, AspectCode: a.Code}
			}
		}
	}
	return ValidationResult{Complete: true}
}

func answered(kind Kind, a models.Aspect) bool {
	if kind == KindDirector {
		return a.Cumple != nil
	}
	return a.Points > 0
}

// ValidAnswer reports whether a score is usable for the rubric kind:
// teacher aspects take points 1 to 4, director aspects need cumple set.
func ValidAnswer(kind Kind, points int, cumple *bool) bool {
	if kind == KindDirector {
		return cumple != nil
	}
	return points >= 1 && points <= 4
}

// SetAnswer records an answer on the aspect with the given code and returns
// false if no such code exists in the rubric. Points applies to teacher
// rubrics, cumple to director rubrics; evidencia is set for both.
func SetAnswer(kind Kind, performances []models.Performance, code string, points int, cumple *bool, evidencia string) bool {
	for i := range performances {
		for j := range performances[i].Aspectos {
			a := &performances[i].Aspectos[j]
			if a.Code != code {
				continue
			}
			if kind == KindDirector {
				a.Cumple = cumple
			} else {
				a.Points = points
			}
			a.Evidencia = evidencia
			return true
		}
	}
	return false
}

// FindAspect returns the aspect with the given code, or nil.
func FindAspect(performances []models.Performance, code string) *models.Aspect {
	for i := range performances {
		for j := range performances[i].Aspectos {
			if performances[i].Aspectos[j].Code == code {
				return &performances[i].Aspectos[j]
			}
		}
	}
	return nil
}
