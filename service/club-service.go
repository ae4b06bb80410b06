package service

import (
	"bytes"
	"context"
	"strings"

	"archery/app_error"
	"archery/repository"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"
)

// Raw HTML in descriptions is escaped since WithUnsafe is not set.
var descriptionRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := descriptionRenderer.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type ClubInput struct {
	Name        string
	Description string
	MinAge      int
	MaxAge      int
	OpenToJoin  bool
}

func (in ClubInput) validate() error {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 60 {
		return app_error.Validation("club name must be between 3 and 60 characters")
	}
	if in.MinAge < 0 || in.MaxAge < in.MinAge {
		return app_error.Validation("age bounds are invalid")
	}
	return nil
}

type ClubService struct {
	db                *gorm.DB
	clubRepository    *repository.ClubRepository
	accountRepository *repository.AccountRepository
	assets            *AssetService
}

func NewClubService(db *gorm.DB, assets *AssetService) *ClubService {
	return &ClubService{
		db:                db,
		clubRepository:    repository.NewClubRepository(db),
		accountRepository: repository.NewAccountRepository(db),
		assets:            assets,
	}
}

func canManageClub(actor *repository.Account, club *repository.Club) bool {
	return actor.IsAdmin() || club.CreatorId == actor.Id
}

// CreateClub makes the creator the first member.
func (s *ClubService) CreateClub(actor *repository.Account, input ClubInput) (*repository.Club, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if actor.ClubId != nil {
		return nil, app_error.Conflict("you already belong to a club")
	}
	taken, err := s.clubRepository.NameTaken(input.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_error.Conflict("a club with this name already exists")
	}
	club := &repository.Club{
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CreatorId:   actor.Id,
		MinAge:      input.MinAge,
		MaxAge:      input.MaxAge,
		OpenToJoin:  input.OpenToJoin,
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := repository.NewClubRepository(tx).Save(club); err != nil {
			return err
		}
		return repository.NewAccountRepository(tx).SetClub(actor.Id, &club.Id)
	})
	if err != nil {
		return nil, err
	}
	actor.ClubId = &club.Id
	return club, nil
}

func (s *ClubService) UpdateClub(actor *repository.Account, id int, input ClubInput) (*repository.Club, error) {
	club, err := s.clubRepository.GetById(id)
	if err != nil {
		return nil, err
	}
	if !canManageClub(actor, club) {
		return nil, app_error.Forbidden("only the club creator can edit the club")
	}
	if err := input.validate(); err != nil {
		return nil, err
	}
	taken, err := s.clubRepository.NameTaken(input.Name, club.Id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, app_error.Conflict("a club with this name already exists")
	}
	club.Name = strings.TrimSpace(input.Name)
	club.Description = input.Description
	club.MinAge = input.MinAge
	club.MaxAge = input.MaxAge
	club.OpenToJoin = input.OpenToJoin
	return s.clubRepository.Save(club)
}

func (s *ClubService) GetClub(id int) (*repository.Club, error) {
	return s.clubRepository.GetById(id)
}

func (s *ClubService) ListClubs(openOnly bool) ([]*repository.Club, error) {
	return s.clubRepository.List(openOnly)
}

func (s *ClubService) ListMembers(clubId int) ([]*repository.Account, error) {
	if _, err := s.clubRepository.GetById(clubId); err != nil {
		return nil, err
	}
	return s.accountRepository.List(repository.AccountFilter{ClubId: &clubId})
}

// LeaveClub refuses to orphan a club whose creator still has members.
func (s *ClubService) LeaveClub(actor *repository.Account) error {
	if actor.ClubId == nil {
		return app_error.Validation("you are not in a club")
	}
	club, err := s.clubRepository.GetById(*actor.ClubId)
	if err != nil {
		return err
	}
	if club.CreatorId == actor.Id {
		members, err := s.accountRepository.CountClubMembers(club.Id)
		if err != nil {
			return err
		}
		if members > 1 {
			return app_error.Conflict("the creator cannot leave while other members remain")
		}
	}
	if err := s.accountRepository.SetClub(actor.Id, nil); err != nil {
		return err
	}
	actor.ClubId = nil
	return nil
}

func (s *ClubService) RemoveMember(actor *repository.Account, clubId int, memberId int) error {
	club, err := s.clubRepository.GetById(clubId)
	if err != nil {
		return err
	}
	if !canManageClub(actor, club) {
		return app_error.Forbidden("only the club creator can remove members")
	}
	if memberId == club.CreatorId {
		return app_error.Conflict("the creator cannot be removed")
	}
	member, err := s.accountRepository.GetById(memberId)
	if err != nil {
		return err
	}
	if member.ClubId == nil || *member.ClubId != clubId {
		return app_error.NotFound("account is not a member of this club")
	}
	return s.accountRepository.SetClub(memberId, nil)
}

func (s *ClubService) UploadLogo(ctx context.Context, actor *repository.Account, clubId int, data []byte) (*repository.Club, error) {
	club, err := s.clubRepository.GetById(clubId)
	if err != nil {
		return nil, err
	}
	if !canManageClub(actor, club) {
		return nil, app_error.Forbidden("only the club creator can change the logo")
	}
	url, err := s.assets.Upload(ctx, "logos", data, ImageTypes)
	if err != nil {
		return nil, err
	}
	club.LogoUrl = &url
	return s.clubRepository.Save(club)
}
