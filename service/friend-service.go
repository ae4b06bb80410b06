package service

import (
	"archery/app_error"
	"archery/repository"

	"gorm.io/gorm"
)

// FriendService covers established friendships. Requests go through ReviewService.
type FriendService struct {
	friendshipRepository *repository.FriendshipRepository
	accountRepository    *repository.AccountRepository
}

func NewFriendService(db *gorm.DB) *FriendService {
	return &FriendService{
		friendshipRepository: repository.NewFriendshipRepository(db),
		accountRepository:    repository.NewAccountRepository(db),
	}
}

func (s *FriendService) ListFriends(accountId int) ([]*repository.Account, error) {
	ids, err := s.friendshipRepository.ListFriendIds(accountId)
	if err != nil {
		return nil, err
	}
	return s.accountRepository.GetByIds(ids)
}

func (s *FriendService) AreFriends(a, b int) (bool, error) {
	return s.friendshipRepository.Exists(a, b)
}

func (s *FriendService) RemoveFriend(actor *repository.Account, friendId int) error {
	if actor.Id == friendId {
		return app_error.Validation("you cannot unfriend yourself")
	}
	return s.friendshipRepository.Delete(actor.Id, friendId)
}
