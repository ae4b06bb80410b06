package controller

import (
	"html"
	"time"

	"archery/logger"
	"archery/repository"
	"archery/service"
	"archery/utils"
)

type Account struct {
	Id          int      `json:"id" binding:"required"`
	Username    string   `json:"username" binding:"required"`
	FirstName   string   `json:"first_name" binding:"required"`
	LastName    string   `json:"last_name" binding:"required"`
	Gender      string   `json:"gender"`
	Roles       []string `json:"roles" binding:"required"`
	ClubId      *int     `json:"club_id"`
	AvatarUrl   *string  `json:"avatar_url"`
	Deactivated bool     `json:"deactivated"`
}

// PrivateAccount adds the fields only the owner and admins see.
type PrivateAccount struct {
	Account
	Email       string    `json:"email" binding:"required"`
	DateOfBirth time.Time `json:"date_of_birth" binding:"required"`
}

func toAccountResponse(account *repository.Account) *Account {
	if account == nil {
		return nil
	}
	return &Account{
		Id:          account.Id,
		Username:    account.Username,
		FirstName:   account.FirstName,
		LastName:    account.LastName,
		Gender:      account.Gender,
		Roles:       account.Roles,
		ClubId:      account.ClubId,
		AvatarUrl:   account.AvatarUrl,
		Deactivated: account.Deactivated,
	}
}

func toPrivateAccountResponse(account *repository.Account) *PrivateAccount {
	return &PrivateAccount{
		Account:     *toAccountResponse(account),
		Email:       account.Email,
		DateOfBirth: account.DateOfBirth,
	}
}

type Club struct {
	Id              int       `json:"id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	CreatorId       int       `json:"creator_id" binding:"required"`
	MinAge          int       `json:"min_age"`
	MaxAge          int       `json:"max_age"`
	OpenToJoin      bool      `json:"open_to_join"`
	LogoUrl         *string   `json:"logo_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// clubDescriptionHTML falls back to the escaped source when rendering fails.
func clubDescriptionHTML(club *repository.Club) string {
	rendered, err := service.RenderMarkdown(club.Description)
	if err != nil {
		logger.Named("mapper").Warnw("could not render club description", "club_id", club.Id, "error", err)
		return "<p>" + html.EscapeString(club.Description) + "</p>"
	}
	return rendered
}

func toClubResponse(club *repository.Club) *Club {
	return &Club{
		Id:              club.Id,
		Name:            club.Name,
		Description:     club.Description,
		DescriptionHTML: clubDescriptionHTML(club),
		CreatorId:       club.CreatorId,
		MinAge:          club.MinAge,
		MaxAge:          club.MaxAge,
		OpenToJoin:      club.OpenToJoin,
		LogoUrl:         club.LogoUrl,
		CreatedAt:       club.CreatedAt,
	}
}

type Category struct {
	Id            int    `json:"id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	EquipmentId   int    `json:"equipment_id" binding:"required"`
	DisciplineId  int    `json:"discipline_id" binding:"required"`
	AgeDivisionId int    `json:"age_division_id" binding:"required"`
}

func toCategoryResponse(category *repository.Category) *Category {
	return &Category{
		Id:            category.Id,
		Name:          category.DisplayName(),
		EquipmentId:   category.EquipmentId,
		DisciplineId:  category.DisciplineId,
		AgeDivisionId: category.AgeDivisionId,
	}
}

type Range struct {
	Id           int     `json:"id" binding:"required"`
	RangeOrder   int     `json:"range_order" binding:"required"`
	DistanceM    int     `json:"distance_m" binding:"required"`
	TargetFaceId int     `json:"target_face_id" binding:"required"`
	TargetFace   *string `json:"target_face"`
	NumberOfEnds int     `json:"number_of_ends" binding:"required"`
	ArrowsPerEnd int     `json:"arrows_per_end" binding:"required"`
	MaxScore     int     `json:"max_score"`
}

type Round struct {
	Id          int      `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	CategoryId  int      `json:"category_id" binding:"required"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Ranges      []*Range `json:"ranges" binding:"required"`
	MaxScore    int      `json:"max_score"`
}

func toRangeResponse(rng *repository.Range) *Range {
	response := &Range{
		Id:           rng.Id,
		RangeOrder:   rng.RangeOrder,
		DistanceM:    rng.DistanceM,
		TargetFaceId: rng.TargetFaceId,
		NumberOfEnds: rng.NumberOfEnds,
		ArrowsPerEnd: rng.ArrowsPerEnd,
		MaxScore:     rng.MaxScore(),
	}
	if rng.TargetFace != nil {
		response.TargetFace = &rng.TargetFace.Name
	}
	return response
}

func toRoundResponse(round *repository.Round) *Round {
	response := &Round{
		Id:          round.Id,
		Name:        round.Name,
		CategoryId:  round.CategoryId,
		Description: round.Description,
		Ranges:      utils.Map(round.Ranges, toRangeResponse),
		MaxScore:    round.MaxScore(),
	}
	if round.Category != nil {
		response.Category = round.Category.DisplayName()
	}
	return response
}

type Championship struct {
	Id              int       `json:"id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Year            int       `json:"year" binding:"required"`
	CreatorId       int       `json:"creator_id" binding:"required"`
	EligibleGroupId *int      `json:"eligible_group_id"`
	StartDate       time.Time `json:"start_date" binding:"required"`
	EndDate         time.Time `json:"end_date" binding:"required"`
	Description     string    `json:"description"`
}

func toChampionshipResponse(championship *repository.YearlyClubChampionship) *Championship {
	return &Championship{
		Id:              championship.Id,
		Name:            championship.Name,
		Year:            championship.Year,
		CreatorId:       championship.CreatorId,
		EligibleGroupId: championship.EligibleGroupId,
		StartDate:       championship.StartDate,
		EndDate:         championship.EndDate,
		Description:     championship.Description,
	}
}

type Competition struct {
	Id                int       `json:"id" binding:"required"`
	Name              string    `json:"name" binding:"required"`
	HostClubId        int       `json:"host_club_id" binding:"required"`
	CreatorId         int       `json:"creator_id" binding:"required"`
	EligibleGroupId   *int      `json:"eligible_group_id"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	EndDate           time.Time `json:"end_date" binding:"required"`
	Address           string    `json:"address"`
	OpenForEnrollment bool      `json:"open_for_enrollment"`
	DocumentUrl       *string   `json:"document_url"`
}

func toCompetitionResponse(competition *repository.ClubCompetition) *Competition {
	return &Competition{
		Id:                competition.Id,
		Name:              competition.Name,
		HostClubId:        competition.HostClubId,
		CreatorId:         competition.CreatorId,
		EligibleGroupId:   competition.EligibleGroupId,
		StartDate:         competition.StartDate,
		EndDate:           competition.EndDate,
		Address:           competition.Address,
		OpenForEnrollment: competition.OpenForEnrollment,
		DocumentUrl:       competition.DocumentUrl,
	}
}

type EventContext struct {
	Id             int  `json:"id" binding:"required"`
	ChampionshipId *int `json:"championship_id"`
	CompetitionId  *int `json:"competition_id"`
	RoundId        int  `json:"round_id" binding:"required"`
	RangeId        int  `json:"range_id" binding:"required"`
	EndOrder       int  `json:"end_order" binding:"required"`
}

func toEventContextResponse(context *repository.EventContext) *EventContext {
	return &EventContext{
		Id:             context.Id,
		ChampionshipId: context.ChampionshipId,
		CompetitionId:  context.CompetitionId,
		RoundId:        context.RoundId,
		RangeId:        context.RangeId,
		EndOrder:       context.EndOrder,
	}
}

type EligibleGroup struct {
	Id        int       `json:"id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	CreatorId int       `json:"creator_id" binding:"required"`
	ClubIds   []int     `json:"club_ids" binding:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func toEligibleGroupResponse(group *repository.EligibleGroup) *EligibleGroup {
	return &EligibleGroup{
		Id:        group.Id,
		Name:      group.Name,
		CreatorId: group.CreatorId,
		ClubIds:   group.ClubIds(),
		CreatedAt: group.CreatedAt,
	}
}

type ReviewRequest struct {
	Id            int                     `json:"id" binding:"required"`
	Kind          repository.RequestKind  `json:"kind" binding:"required"`
	RequesterId   int                     `json:"requester_id" binding:"required"`
	Requester     *Account                `json:"requester"`
	TargetId      int                     `json:"target_id" binding:"required"`
	Status        repository.ReviewStatus `json:"status" binding:"required"`
	Message       string                  `json:"message"`
	ReviewerId    *int                    `json:"reviewer_id"`
	ReviewComment *string                 `json:"review_comment"`
	CreatedAt     time.Time               `json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`
}

func toReviewRequestResponse(request *repository.ReviewRequest) *ReviewRequest {
	return &ReviewRequest{
		Id:            request.Id,
		Kind:          request.Kind,
		RequesterId:   request.RequesterId,
		Requester:     toAccountResponse(request.Requester),
		TargetId:      request.TargetId,
		Status:        request.Status,
		Message:       request.Message,
		ReviewerId:    request.ReviewerId,
		ReviewComment: request.ReviewComment,
		CreatedAt:     request.CreatedAt,
		UpdatedAt:     request.UpdatedAt,
	}
}

type Score struct {
	Id             int                     `json:"id" binding:"required"`
	ArcherId       int                     `json:"archer_id" binding:"required"`
	EventContextId int                     `json:"event_context_id" binding:"required"`
	Type           repository.ScoreType    `json:"type" binding:"required"`
	Arrows         []int                   `json:"arrows" binding:"required"`
	Sum            int                     `json:"sum" binding:"required"`
	Status         repository.ReviewStatus `json:"status" binding:"required"`
	RecorderId     *int                    `json:"recorder_id"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

func toScoreResponse(score *repository.ParticipantScore) *Score {
	arrows := make([]int, len(score.Arrows))
	for i, a := range score.Arrows {
		arrows[i] = int(a)
	}
	return &Score{
		Id:             score.Id,
		ArcherId:       score.ArcherId,
		EventContextId: score.EventContextId,
		Type:           score.Type,
		Arrows:         arrows,
		Sum:            score.Sum,
		Status:         score.Status,
		RecorderId:     score.RecorderId,
		UpdatedAt:      score.UpdatedAt,
	}
}

type Participant struct {
	AccountId int                          `json:"account_id" binding:"required"`
	Role      repository.ParticipationRole `json:"role" binding:"required"`
}

func toParticipantResponse(p *repository.Participating) *Participant {
	return &Participant{AccountId: p.AccountId, Role: p.Role}
}
