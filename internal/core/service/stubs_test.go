package service

import (
	"context"
	"fmt"

	"github.com/taskboard/kanban-api/internal/core/domain"
	"github.com/taskboard/kanban-api/internal/core/ports"
)

// In-memory stub repositories shared by the service tests. IDs are assigned
// sequentially so tests can predict them.

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo(users ...*domain.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Create(_ context.Context, name, username, passwordHash string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return nil, &domain.ConstraintError{Violations: []domain.ConstraintViolation{{
				Code:    "validation_error",
				Path:    "username",
				Value:   username,
				Message: "username must be unique",
			}}}
		}
	}
	u := &domain.User{
		ID:           fmt.Sprintf("user-%d", len(r.users)+1),
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

type stubBoardRepo struct {
	boards  map[string]*domain.Board
	deleted []string
}

func newStubBoardRepo(boards ...*domain.Board) *stubBoardRepo {
	r := &stubBoardRepo{boards: make(map[string]*domain.Board)}
	for _, b := range boards {
		r.boards[b.ID] = b
	}
	return r
}

func (r *stubBoardRepo) Create(_ context.Context, userID, label string) (*domain.Board, error) {
	b := &domain.Board{
		ID:     fmt.Sprintf("board-%d", len(r.boards)+1),
		UserID: userID,
		Label:  label,
	}
	r.boards[b.ID] = b
	return b, nil
}

func (r *stubBoardRepo) FindByID(_ context.Context, id string) (*domain.Board, error) {
	b, ok := r.boards[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	return b, nil
}

func (r *stubBoardRepo) FindByUserID(_ context.Context, userID string) ([]domain.Board, error) {
	out := []domain.Board{}
	for _, b := range r.boards {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubBoardRepo) Update(_ context.Context, id, label string) (*domain.Board, error) {
	b, ok := r.boards[id]
	if !ok {
		return nil, domain.ErrBoardNotFound
	}
	b.Label = label
	return b, nil
}

func (r *stubBoardRepo) Delete(_ context.Context, id string) error {
	delete(r.boards, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type stubColumnRepo struct {
	columns map[string]*domain.Column
}

func newStubColumnRepo(columns ...*domain.Column) *stubColumnRepo {
	r := &stubColumnRepo{columns: make(map[string]*domain.Column)}
	for _, col := range columns {
		r.columns[col.ID] = col
	}
	return r
}

func (r *stubColumnRepo) Create(_ context.Context, userID, boardID, label string) (*domain.Column, error) {
	col := &domain.Column{
		ID:      fmt.Sprintf("column-%d", len(r.columns)+1),
		UserID:  userID,
		BoardID: boardID,
		Label:   label,
	}
	r.columns[col.ID] = col
	return col, nil
}

func (r *stubColumnRepo) FindByID(_ context.Context, id string) (*domain.Column, error) {
	col, ok := r.columns[id]
	if !ok {
		return nil, domain.ErrColumnNotFound
	}
	return col, nil
}

func (r *stubColumnRepo) FindByUserID(_ context.Context, userID string) ([]domain.Column, error) {
	out := []domain.Column{}
	for _, col := range r.columns {
		if col.UserID == userID {
			out = append(out, *col)
		}
	}
	return out, nil
}

func (r *stubColumnRepo) FindByBoardID(_ context.Context, boardID string) ([]domain.Column, error) {
	out := []domain.Column{}
	for _, col := range r.columns {
		if col.BoardID == boardID {
			out = append(out, *col)
		}
	}
	return out, nil
}

func (r *stubColumnRepo) Update(_ context.Context, id, label string) (*domain.Column, error) {
	col, ok := r.columns[id]
	if !ok {
		return nil, domain.ErrColumnNotFound
	}
	col.Label = label
	return col, nil
}

func (r *stubColumnRepo) Delete(_ context.Context, id string) error {
	delete(r.columns, id)
	return nil
}

type stubCardRepo struct {
	cards          map[string]*domain.Card
	deletedColumns []string
}

func newStubCardRepo(cards ...*domain.Card) *stubCardRepo {
	r := &stubCardRepo{cards: make(map[string]*domain.Card)}
	for _, card := range cards {
		r.cards[card.ID] = card
	}
	return r
}

func (r *stubCardRepo) Create(_ context.Context, in ports.CreateCardInput) (*domain.Card, error) {
	card := &domain.Card{
		ID:       fmt.Sprintf("card-%d", len(r.cards)+1),
		UserID:   in.UserID,
		ColumnID: in.ColumnID,
		Brief:    in.Brief,
		Body:     in.Body,
		Color:    in.Color,
	}
	r.cards[card.ID] = card
	return card, nil
}

func (r *stubCardRepo) FindByID(_ context.Context, id string) (*domain.Card, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	return card, nil
}

func (r *stubCardRepo) FindByColumnID(_ context.Context, columnID string) ([]domain.Card, error) {
	out := []domain.Card{}
	for _, card := range r.cards {
		if card.ColumnID == columnID {
			out = append(out, *card)
		}
	}
	return out, nil
}

func (r *stubCardRepo) Update(_ context.Context, id string, in ports.UpdateCardInput) (*domain.Card, error) {
	card, ok := r.cards[id]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	if in.ColumnID != nil {
		card.ColumnID = *in.ColumnID
	}
	if in.Brief != nil {
		card.Brief = *in.Brief
	}
	if in.Body != nil {
		card.Body = in.Body
	}
	if in.Color != nil {
		card.Color = in.Color
	}
	return card, nil
}

func (r *stubCardRepo) Delete(_ context.Context, id string) error {
	delete(r.cards, id)
	return nil
}

func (r *stubCardRepo) DeleteByColumnID(_ context.Context, columnID string) error {
	for id, card := range r.cards {
		if card.ColumnID == columnID {
			delete(r.cards, id)
		}
	}
	r.deletedColumns = append(r.deletedColumns, columnID)
	return nil
}

type stubTagRepo struct {
	tags map[string]*domain.Tag
}

func newStubTagRepo(tags ...*domain.Tag) *stubTagRepo {
	r := &stubTagRepo{tags: make(map[string]*domain.Tag)}
	for _, tag := range tags {
		r.tags[tag.ID] = tag
	}
	return r
}

func (r *stubTagRepo) Create(_ context.Context, userID, cardID, label, color string) (*domain.Tag, error) {
	tag := &domain.Tag{
		ID:      fmt.Sprintf("tag-%d", len(r.tags)+1),
		UserID:  userID,
		CardIDs: []string{cardID},
		Label:   label,
		Color:   color,
	}
	r.tags[tag.ID] = tag
	return tag, nil
}

func (r *stubTagRepo) FindByID(_ context.Context, id string) (*domain.Tag, error) {
	tag, ok := r.tags[id]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	return tag, nil
}

func (r *stubTagRepo) FindByUserID(_ context.Context, userID string) ([]domain.Tag, error) {
	out := []domain.Tag{}
	for _, tag := range r.tags {
		if tag.UserID == userID {
			out = append(out, *tag)
		}
	}
	return out, nil
}

func (r *stubTagRepo) AddCard(_ context.Context, tagID, cardID string) (*domain.Tag, error) {
	tag, ok := r.tags[tagID]
	if !ok {
		return nil, domain.ErrTagNotFound
	}
	tag.CardIDs = append(tag.CardIDs, cardID)
	return tag, nil
}

func (r *stubTagRepo) Delete(_ context.Context, id string) error {
	delete(r.tags, id)
	return nil
}

type stubActivityRepo struct {
	activities []*domain.Activity
}

func (r *stubActivityRepo) Create(_ context.Context, userID, cardID, activityType, description string) (*domain.Activity, error) {
	a := &domain.Activity{
		ID:          fmt.Sprintf("activity-%d", len(r.activities)+1),
		UserID:      userID,
		CardID:      cardID,
		Type:        activityType,
		Description: description,
	}
	r.activities = append(r.activities, a)
	return a, nil
}

func (r *stubActivityRepo) FindByCardID(_ context.Context, cardID string) ([]domain.Activity, error) {
	out := []domain.Activity{}
	for _, a := range r.activities {
		if a.CardID == cardID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type stubSessionStore struct {
	sessions   map[string]domain.UserDetails
	destroyErr error
	destroyed  []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.UserDetails)}
}

func (s *stubSessionStore) Create(_ context.Context, user domain.UserDetails) (string, error) {
	sid := fmt.Sprintf("sid-%d", len(s.sessions)+1)
	s.sessions[sid] = user
	return sid, nil
}

func (s *stubSessionStore) Get(_ context.Context, sid string) (*domain.UserDetails, error) {
	user, ok := s.sessions[sid]
	if !ok {
		return nil, domain.ErrNoSession
	}
	return &user, nil
}

func (s *stubSessionStore) Destroy(_ context.Context, sid string) error {
	if s.destroyErr != nil {
		return s.destroyErr
	}
	delete(s.sessions, sid)
	s.destroyed = append(s.destroyed, sid)
	return nil
}
