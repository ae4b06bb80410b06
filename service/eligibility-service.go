package service

import (
	"strings"

	"archery/app_error"
	"archery/repository"
	"archery/utils"

	"gorm.io/gorm"
)

// MatchGroups keeps the groups whose member set contains every requested club.
// An empty request matches every group.
func MatchGroups(groups []*repository.EligibleGroup, clubIds []int) []*repository.EligibleGroup {
	return utils.Filter(groups, func(g *repository.EligibleGroup) bool {
		return utils.ContainsAll(g.ClubIds(), clubIds)
	})
}

// IsClubEligible admits every club when there is no group. A club-less archer
// never passes a group.
func IsClubEligible(group *repository.EligibleGroup, clubId *int) bool {
	if group == nil {
		return true
	}
	if clubId == nil {
		return false
	}
	return utils.Contains(group.ClubIds(), *clubId)
}

type EligibilityService struct {
	groupRepository *repository.EligibleGroupRepository
	clubRepository  *repository.ClubRepository
}

func NewEligibilityService(db *gorm.DB) *EligibilityService {
	return &EligibilityService{
		groupRepository: repository.NewEligibleGroupRepository(db),
		clubRepository:  repository.NewClubRepository(db),
	}
}

func (s *EligibilityService) checkClubs(clubIds []int) error {
	clubIds = utils.Uniques(clubIds)
	clubs, err := s.clubRepository.GetByIds(clubIds)
	if err != nil {
		return err
	}
	if len(clubs) != len(clubIds) {
		return app_error.Validation("some clubs do not exist")
	}
	return nil
}

func (s *EligibilityService) CreateGroup(actor *repository.Account, name string, clubIds []int) (*repository.EligibleGroup, error) {
	if strings.TrimSpace(name) == "" {
		return nil, app_error.Validation("group name is required")
	}
	if err := s.checkClubs(clubIds); err != nil {
		return nil, err
	}
	group := &repository.EligibleGroup{
		Name:      strings.TrimSpace(name),
		CreatorId: actor.Id,
		Members: utils.Map(utils.Uniques(clubIds), func(id int) *repository.EligibleClubMember {
			return &repository.EligibleClubMember{ClubId: id}
		}),
	}
	if _, err := s.groupRepository.Create(group); err != nil {
		return nil, err
	}
	return s.groupRepository.GetById(group.Id)
}

func (s *EligibilityService) ListGroups() ([]*repository.EligibleGroup, error) {
	return s.groupRepository.List()
}

func (s *EligibilityService) GetGroup(id int) (*repository.EligibleGroup, error) {
	return s.groupRepository.GetById(id)
}

func (s *EligibilityService) editableGroup(actor *repository.Account, groupId int) (*repository.EligibleGroup, error) {
	group, err := s.groupRepository.GetById(groupId)
	if err != nil {
		return nil, err
	}
	if group.CreatorId != actor.Id && !actor.IsAdmin() {
		return nil, app_error.Forbidden("only the group creator can change its members")
	}
	return group, nil
}

func (s *EligibilityService) AddClub(actor *repository.Account, groupId int, clubId int) (*repository.EligibleGroup, error) {
	if _, err := s.editableGroup(actor, groupId); err != nil {
		return nil, err
	}
	if _, err := s.clubRepository.GetById(clubId); err != nil {
		return nil, err
	}
	if err := s.groupRepository.AddClub(groupId, clubId); err != nil {
		return nil, err
	}
	return s.groupRepository.GetById(groupId)
}

func (s *EligibilityService) RemoveClub(actor *repository.Account, groupId int, clubId int) (*repository.EligibleGroup, error) {
	if _, err := s.editableGroup(actor, groupId); err != nil {
		return nil, err
	}
	if err := s.groupRepository.RemoveClub(groupId, clubId); err != nil {
		return nil, err
	}
	return s.groupRepository.GetById(groupId)
}

// MatchGroups scans every group for a superset of clubIds.
func (s *EligibilityService) MatchGroups(clubIds []int) ([]*repository.EligibleGroup, error) {
	groups, err := s.groupRepository.List()
	if err != nil {
		return nil, err
	}
	return MatchGroups(groups, clubIds), nil
}

func (s *EligibilityService) IsClubEligible(groupId *int, clubId *int) (bool, error) {
	if groupId == nil {
		return true, nil
	}
	group, err := s.groupRepository.GetById(*groupId)
	if err != nil {
		return false, err
	}
	return IsClubEligible(group, clubId), nil
}
