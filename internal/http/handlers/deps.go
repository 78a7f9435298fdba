package handlers

import (
	"shopadmin/internal/config"
	"shopadmin/internal/repos"
	"shopadmin/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	HomeHandler          *HomeHandler
	CategoryAdminHandler *CategoryAdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	catRepo := repos.NewCategoryRepo(db)
	catSvc := services.NewCategoryService(catRepo)

	return &Deps{
		HomeHandler:          &HomeHandler{Cats: catSvc},
		CategoryAdminHandler: &CategoryAdminHandler{Cats: catSvc},
	}
}
