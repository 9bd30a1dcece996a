package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"passion-match/internal/domain"
	"passion-match/internal/repository"
)

var archetypeDescriptions = map[domain.Archetype]string{
	domain.ArchetypeQuietBuilder:    "Creators who find joy in the craft, building with patience and precision.",
	domain.ArchetypeCuriousExplorer: `Seekers who delight in discovery, always asking "what if?"`,
	domain.ArchetypeWarmConnector:   "Sharers who bring people together through their passions.",
	domain.ArchetypeStoryteller:     "Narrators who weave experiences into captivating tales.",
	domain.ArchetypeCalmAnalyst:     "Thinkers who find beauty in understanding the details.",
}

var (
	slugInvalidChars = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
)

var ErrClusterServiceNotConfigured = errors.New("cluster service not configured")

// RoomAssignment son las dos salas a las que se envia a un usuario tras la entrevista.
type RoomAssignment struct {
	InterestRoom domain.Room `json:"interest_room"`
	VibeRoom     domain.Room `json:"vibe_room"`
}

// ClusterService agrupa usuarios en salas segun su tag principal y su arquetipo.
type ClusterService struct {
	rooms  repository.RoomRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewClusterService(rooms repository.RoomRepository, logger *zap.Logger) *ClusterService {
	return &ClusterService{
		rooms:  rooms,
		logger: logger,
		now:    time.Now,
	}
}

// PlanRooms calcula (sin tocar la base) la sala de interes y la sala de vibra.
func PlanRooms(analysis domain.TraitAnalysis, niche string) (interest domain.Room, vibe domain.Room) {
	label := niche
	if len(analysis.Tags) > 0 && analysis.Tags[0] != "" {
		label = analysis.Tags[0]
	}

	interest = domain.Room{
		Name:        label + " Enthusiasts",
		Slug:        "interest-" + slugify(label),
		Type:        domain.RoomTypeInterest,
		Description: "A community for people passionate about " + label,
	}

	archetype := string(analysis.Archetype)
	vibe = domain.Room{
		Name:        "The " + archetype + "s",
		Slug:        "vibe-" + slugify(archetype),
		Type:        domain.RoomTypeVibe,
		Description: archetypeDescriptions[analysis.Archetype],
	}
	return interest, vibe
}

// AssignUser crea las salas que falten y suma al usuario a ambas.
func (s *ClusterService) AssignUser(ctx context.Context, userID string, analysis domain.TraitAnalysis, niche string) (RoomAssignment, error) {
	if s == nil || s.rooms == nil {
		return RoomAssignment{}, ErrClusterServiceNotConfigured
	}

	plannedInterest, plannedVibe := PlanRooms(analysis, niche)

	interest, err := s.ensureRoom(ctx, plannedInterest)
	if err != nil {
		return RoomAssignment{}, fmt.Errorf("ensure interest room %s: %w", plannedInterest.Slug, err)
	}
	vibe, err := s.ensureRoom(ctx, plannedVibe)
	if err != nil {
		return RoomAssignment{}, fmt.Errorf("ensure vibe room %s: %w", plannedVibe.Slug, err)
	}

	joinedAt := s.now().UTC()
	for _, room := range []domain.Room{interest, vibe} {
		member := domain.RoomMember{RoomID: room.ID, UserID: userID, JoinedAt: joinedAt}
		if err := s.rooms.AddMember(ctx, member); err != nil {
			return RoomAssignment{}, fmt.Errorf("add member to %s: %w", room.Slug, err)
		}
	}

	if s.logger != nil {
		s.logger.Info("user assigned to rooms",
			zap.String("user_id", userID),
			zap.String("interest_room", interest.Slug),
			zap.String("vibe_room", vibe.Slug),
		)
	}

	return RoomAssignment{InterestRoom: interest, VibeRoom: vibe}, nil
}

// ListUserRooms devuelve las salas del usuario, la mas reciente primero.
func (s *ClusterService) ListUserRooms(ctx context.Context, userID string) ([]domain.Room, error) {
	if s == nil || s.rooms == nil {
		return nil, ErrClusterServiceNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return []domain.Room{}, nil
	}
	return s.rooms.ListByUserID(ctx, userID)
}

func (s *ClusterService) ensureRoom(ctx context.Context, planned domain.Room) (domain.Room, error) {
	existing, err := s.rooms.GetBySlug(ctx, planned.Slug)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return domain.Room{}, err
	}

	planned.ID = uuid.NewString()
	planned.CreatedAt = s.now().UTC()
	return s.rooms.Create(ctx, planned)
}

func slugify(text string) string {
	s := strings.ToLower(text)
	s = slugInvalidChars.ReplaceAllString(s, "")
	s = slugWhitespace.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}
