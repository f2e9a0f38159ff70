package service

import (
	"github.com/haritzismaildev/smart-learning-sub001/internal/model"
	"github.com/haritzismaildev/smart-learning-sub001/internal/util"
)

type AuthzService struct {
	Users UserStore
}

func NewAuthzService(users UserStore) *AuthzService {
	return &AuthzService{Users: users}
}

// Authorize decides whether the requester may read targetUserID's data.
// Rules, first match wins: self; parent of target; otherwise denied.
// Admins get their own role-gated endpoints and no exemption here.
func (s *AuthzService) Authorize(requesterID uint, role model.UserRole, targetUserID uint) error {
	if requesterID == targetUserID {
		return nil
	}

	if role == model.Parent {
		children, err := s.Users.FindChildren(requesterID)
		if err != nil {
			return err
		}
		for _, child := range children {
			if child.ID == targetUserID {
				return nil
			}
		}
	}

	return util.ErrPermissionDenied
}
