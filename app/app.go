package app

import (
	"github.com/go-chi/oauth"
	"github.com/mbolis/survei-haji/config"
	"github.com/mbolis/survei-haji/database"
	"github.com/mbolis/survei-haji/survey"
)

type App struct {
	database.Store
	*oauth.BearerServer
	config.Config
	Validator *survey.Validator
}
