package handler

import (
	"strconv"

	"taskhive.app/api/internal/model"
)

// All identifiers cross the API boundary as opaque decimal strings;
// int64s are an internal detail.

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type WorkspaceResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Users  []string `json:"users"`
	Boards []string `json:"boards"`
}

type BoardResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Workspace string          `json:"workspace"`
	Labels    []LabelResponse `json:"labels"`
	Lists     []ListResponse  `json:"lists"`
}

type LabelResponse struct {
	ID     string `json:"id"`
	Colour string `json:"colour"`
	Title  string `json:"title"`
}

type ListResponse struct {
	ID     string         `json:"id"`
	Header string         `json:"header"`
	Cards  []CardResponse `json:"cards"`
}

type CardResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Assign      []string `json:"assign"`
	Labels      []string `json:"labels"`
}

func toUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:       formatID(user.ID),
		FullName: user.FullName,
		Email:    user.Email,
	}
}

func toWorkspaceResponse(ws *model.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:     formatID(ws.ID),
		Name:   ws.Name,
		Users:  formatIDs(ws.Users),
		Boards: formatIDs(ws.Boards),
	}
}

func toBoardResponse(board *model.Board) BoardResponse {
	labels := make([]LabelResponse, len(board.Labels))
	for i, l := range board.Labels {
		labels[i] = LabelResponse{ID: formatID(l.ID), Colour: l.Colour, Title: l.Title}
	}

	lists := make([]ListResponse, len(board.Lists))
	for i, l := range board.Lists {
		cards := make([]CardResponse, len(l.Cards))
		for j, card := range l.Cards {
			cards[j] = CardResponse{
				ID:          formatID(card.ID),
				Title:       card.Title,
				Description: card.Description,
				Assign:      formatIDs(card.Assign),
				Labels:      formatIDs(card.Labels),
			}
		}
		lists[i] = ListResponse{ID: formatID(l.ID), Header: l.Header, Cards: cards}
	}

	return BoardResponse{
		ID:        formatID(board.ID),
		Name:      board.Name,
		Workspace: formatID(board.WorkspaceID),
		Labels:    labels,
		Lists:     lists,
	}
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatIDs(ids []int64) []string {
	result := make([]string, len(ids))
	for i, id := range ids {
		result[i] = strconv.FormatInt(id, 10)
	}
	return result
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
