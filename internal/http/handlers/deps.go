package handlers

import (
	"royalstudy/internal/config"
	"royalstudy/internal/repos"
	"royalstudy/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	BookHandler     *BookHandler
	AuthorHandler   *AuthorHandler
	CategoryHandler *CategoryHandler
	ContactHandler  *ContactHandler
	CalendarHandler *CalendarHandler
	QuizHandler     *QuizHandler
	StudyHandler    *StudyHandler
	AdminHandler    *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	bookRepo := repos.NewBookRepo(db)
	authorRepo := repos.NewAuthorRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	lookupRepo := repos.NewLookupRepo(db)
	schedRepo := repos.NewScheduleRepo(db)
	studyRepo := repos.NewStudyMaterialRepo(db)
	quizRepo := repos.NewQuizRepo(db)
	inqRepo := repos.NewInquiryRepo(db)
	userRepo := repos.NewUserRepo(db)

	catalogSvc := services.NewCatalogService(bookRepo, authorRepo, catRepo)
	schedSvc := services.NewScheduleService(schedRepo)
	quizSvc := services.NewQuizService(quizRepo)
	inqSvc := services.NewInquiryService(inqRepo, catalogSvc, cfg.WhatsAppPhone)

	return &Deps{
		BookHandler:     &BookHandler{Catalog: catalogSvc},
		AuthorHandler:   &AuthorHandler{Catalog: catalogSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ContactHandler:  &ContactHandler{Inquiries: inqSvc, Catalog: catalogSvc},
		CalendarHandler: &CalendarHandler{Schedules: schedSvc},
		QuizHandler:     &QuizHandler{Quizzes: quizSvc, Lookups: lookupRepo, Auth: auth},
		StudyHandler:    &StudyHandler{Materials: studyRepo, Lookups: lookupRepo},
		AdminHandler: &AdminHandler{
			Books:     bookRepo,
			Authors:   authorRepo,
			Cats:      catRepo,
			Lookups:   lookupRepo,
			Schedules: schedSvc,
			Inquiries: inqRepo,
			Users:     userRepo,
		},
	}
}
