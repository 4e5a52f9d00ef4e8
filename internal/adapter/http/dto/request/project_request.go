package request

import (
	"errors"
	"time"

	"project_materials/internal/domain/entities"
)

// DateLayout is the ISO calendar date format used for project dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

type ProjectRequest struct {
	ID        *int    `json:"id" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Address   *string `json:"address"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r ProjectRequest) ToEntity() (entities.Project, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return entities.Project{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return entities.Project{}, err
	}
	return entities.Project{
		ID:        *r.ID,
		Name:      r.Name,
		Address:   r.Address,
		StartDate: start,
		EndDate:   end,
	}, nil
}

func parseDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *v)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
