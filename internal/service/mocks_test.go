package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"passion-match/internal/domain"
)

type mockTraitRepo struct {
	upsertCount int
	lastTraits  domain.Traits
	stored      map[string]domain.Traits
	err         error
}

func (m *mockTraitRepo) Upsert(ctx context.Context, traits domain.Traits) error {
	m.upsertCount++
	m.lastTraits = traits
	if m.err != nil {
		return m.err
	}
	if m.stored == nil {
		m.stored = make(map[string]domain.Traits)
	}
	m.stored[traits.UserID] = traits
	return nil
}

func (m *mockTraitRepo) GetByUserID(ctx context.Context, userID string) (domain.Traits, error) {
	if m.err != nil {
		return domain.Traits{}, m.err
	}
	traits, ok := m.stored[userID]
	if !ok {
		return domain.Traits{}, pgx.ErrNoRows
	}
	return traits, nil
}

type mockRoomRepo struct {
	bySlug      map[string]domain.Room
	members     []domain.RoomMember
	createCount int
	getErr      error
	memberErr   error
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{bySlug: make(map[string]domain.Room)}
}

func (m *mockRoomRepo) GetBySlug(ctx context.Context, slug string) (domain.Room, error) {
	if m.getErr != nil {
		return domain.Room{}, m.getErr
	}
	room, ok := m.bySlug[slug]
	if !ok {
		return domain.Room{}, pgx.ErrNoRows
	}
	return room, nil
}

func (m *mockRoomRepo) Create(ctx context.Context, room domain.Room) (domain.Room, error) {
	m.createCount++
	m.bySlug[room.Slug] = room
	return room, nil
}

func (m *mockRoomRepo) AddMember(ctx context.Context, member domain.RoomMember) error {
	if m.memberErr != nil {
		return m.memberErr
	}
	for _, existing := range m.members {
		if existing.RoomID == member.RoomID && existing.UserID == member.UserID {
			return nil
		}
	}
	m.members = append(m.members, member)
	return nil
}

func (m *mockRoomRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Room, error) {
	rooms := []domain.Room{}
	for _, member := range m.members {
		if member.UserID != userID {
			continue
		}
		for _, room := range m.bySlug {
			if room.ID == member.RoomID {
				rooms = append(rooms, room)
			}
		}
	}
	return rooms, nil
}
