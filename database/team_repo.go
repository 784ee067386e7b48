package database

import (
	"gorm.io/gorm"

	"github.com/francislub/busines-consultant-sub001/models"
)

type TeamRepo struct {
	Repo[models.TeamMember]
}

func NewTeamRepo(db *gorm.DB) *TeamRepo {
	return &TeamRepo{NewRepo[models.TeamMember](db, "Author")}
}
