package controllers

import (
	"context"

	"minutes/minutes/sources/psql/dao"
	"minutes/minutes/sources/psql/models"
)

type UserController struct {
	dao *dao.UserDAO
}

func NewUserController(dao *dao.UserDAO) *UserController {
	return &UserController{dao: dao}
}

func (c *UserController) GetUser(ctx context.Context, id int) (*models.User, error) {
	return c.dao.GetUserByID(ctx, id)
}

func (c *UserController) CreateUser(ctx context.Context, username, email string, fullName *string) (*models.User, error) {
	return c.dao.CreateUser(ctx, username, email, fullName)
}
