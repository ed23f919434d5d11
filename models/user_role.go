package models

type UserRole string

const (
	UserRoleAdmin    UserRole = "admin"
	UserRoleManager  UserRole = "manager"
	UserRoleHR       UserRole = "hr"
	UserRoleTeamLead UserRole = "team_lead"
)
