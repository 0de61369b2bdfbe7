// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Structure:
//   - base.go: BaseModel shared by every table
//   - identity.go: users and user types
//   - teams.go: teams, team types and companies
//   - incident.go: incidents
//   - messaging.go: messages and notifications
//   - audit.go: the append-only audit trail
package models
