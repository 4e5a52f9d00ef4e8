package response

import (
	"time"

	"project_materials/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type ProjectResponse struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address"`
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:        p.ID,
		Name:      p.Name,
		Address:   p.Address,
		StartDate: formatDate(p.StartDate),
		EndDate:   formatDate(p.EndDate),
	}
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}

type TotalResponse struct {
	Total float64 `json:"total"`
}

type QuantityResponse struct {
	Quantity float64 `json:"quantity"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
