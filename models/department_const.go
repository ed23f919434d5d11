package models

type DepartmentStatus string

const (
	DepartmentStatusActive   DepartmentStatus = "active"
	DepartmentStatusInactive DepartmentStatus = "inactive"
)

func ParseDepartmentStatus(value string) (DepartmentStatus, bool) {
	status := DepartmentStatus(normalizeEnum(value))
	switch status {
	case DepartmentStatusActive, DepartmentStatusInactive:
		return status, true
	}
	return "", false
}
