package session

import "github.com/KirkDiggler/eatwhat/internal/models"

type SaveSessionInput struct {
	Session *models.Session
}

type GetSessionInput struct {
	Code string
}

type CodeInUseInput struct {
	Code string
}
