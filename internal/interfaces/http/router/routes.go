package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rescue-ops/backend/internal/interfaces/http/handler"
)

// Handlers bundles every API handler mounted by APIGroups
type Handlers struct {
	System        *handler.SystemHandler
	Users         *handler.UserHandler
	UserTypes     *handler.UserTypeHandler
	Teams         *handler.TeamHandler
	TeamTypes     *handler.TeamTypeHandler
	Companies     *handler.CompanyHandler
	Incidents     *handler.IncidentHandler
	Messages      *handler.MessageHandler
	Notifications *handler.NotificationHandler
	Audit         *handler.AuditHandler
}

// APIGroups builds the route groups of the versioned API
func APIGroups(h Handlers) []*DomainGroup {
	system := NewDomainGroup("system", "/system").
		GET("/info", h.System.GetSystemInfo).
		GET("/ping", h.System.Ping)

	users := NewDomainGroup("users", "/users").
		POST("", h.Users.Create).
		GET("", h.Users.List).
		GET("/:id", h.Users.GetByID).
		PUT("/:id", h.Users.Update).
		DELETE("/:id", h.Users.Delete).
		GET("/:id/notifications", h.Notifications.ListForRecipient)

	userTypes := NewDomainGroup("user-types", "/user-types").
		POST("", h.UserTypes.Create).
		GET("", h.UserTypes.List).
		GET("/:id", h.UserTypes.GetByID).
		DELETE("/:id", h.UserTypes.Delete)

	teams := NewDomainGroup("teams", "/teams").
		POST("", h.Teams.Create).
		GET("", h.Teams.List).
		GET("/:id", h.Teams.GetByID).
		PUT("/:id", h.Teams.Update).
		DELETE("/:id", h.Teams.Delete)

	teamTypes := NewDomainGroup("team-types", "/team-types").
		POST("", h.TeamTypes.Create).
		GET("", h.TeamTypes.List).
		GET("/:id", h.TeamTypes.GetByID).
		DELETE("/:id", h.TeamTypes.Delete)

	companies := NewDomainGroup("companies", "/companies").
		POST("", h.Companies.Create).
		GET("", h.Companies.List).
		GET("/:id", h.Companies.GetByID).
		PUT("/:id", h.Companies.Update).
		DELETE("/:id", h.Companies.Delete).
		GET("/:id/teams", h.Teams.ListByCompany)

	incidents := NewDomainGroup("incidents", "/incidents").
		POST("", h.Incidents.Create).
		GET("", h.Incidents.List).
		GET("/:id", h.Incidents.GetByID).
		PUT("/:id", h.Incidents.Update).
		DELETE("/:id", h.Incidents.Delete)

	messages := NewDomainGroup("messages", "/messages").
		POST("", h.Messages.Create).
		GET("", h.Messages.List).
		GET("/:id", h.Messages.GetByID).
		PUT("/:id", h.Messages.Update).
		DELETE("/:id", h.Messages.Delete)

	notifications := NewDomainGroup("notifications", "/notifications").
		POST("", h.Notifications.Create).
		GET("", h.Notifications.List).
		GET("/:id", h.Notifications.GetByID).
		PUT("/:id", h.Notifications.Update).
		POST("/:id/read", h.Notifications.MarkRead).
		DELETE("/:id", h.Notifications.Delete)

	audit := NewDomainGroup("audit", "/audit").
		GET("", h.Audit.List).
		GET("/:kind/:id", h.Audit.History)

	return []*DomainGroup{system, users, userTypes, teams, teamTypes, companies, incidents, messages, notifications, audit}
}

// RegisterOperational mounts the unversioned health and metrics endpoints
func RegisterOperational(engine *gin.Engine, system *handler.SystemHandler, metrics http.Handler) {
	engine.GET("/health", system.Health)
	if metrics != nil {
		engine.GET("/metrics", gin.WrapH(metrics))
	}
}
