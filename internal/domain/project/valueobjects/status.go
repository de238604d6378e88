package valueobjects

import "fmt"

type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "planned"
	StatusOngoing   ProjectStatus = "ongoing"
	StatusCompleted ProjectStatus = "completed"
)

var validProjectStatuses = map[ProjectStatus]bool{
	StatusPlanned:   true,
	StatusOngoing:   true,
	StatusCompleted: true,
}

func (ps ProjectStatus) String() string {
	return string(ps)
}

func (ps ProjectStatus) IsValid() bool {
	return validProjectStatuses[ps]
}

func (ps ProjectStatus) IsCompleted() bool {
	return ps == StatusCompleted
}

func NewProjectStatus(s string) (ProjectStatus, error) {
	ps := ProjectStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return ps, nil
}
