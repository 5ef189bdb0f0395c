package dto

import "github.com/nexus-desk/nexus/internal/domain/team"

type MemberDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	Status string `json:"status"`
}

func ToMemberDTO(m *team.Member) *MemberDTO {
	if m == nil {
		return nil
	}
	return &MemberDTO{
		ID:     m.ID(),
		Name:   m.Name(),
		Role:   m.Role(),
		Email:  m.Email(),
		Status: m.Status().String(),
	}
}

func ToMemberDTOList(members []*team.Member) []*MemberDTO {
	result := make([]*MemberDTO, 0, len(members))
	for _, m := range members {
		result = append(result, ToMemberDTO(m))
	}
	return result
}
