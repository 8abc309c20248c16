package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"testing"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/cinemadiroma/booking-gateway/internal/domain"
)

const cacheImageName = "redis:7"

// SessionStoreSuite exercises the selection round-trip against a real
// Redis-backed session store, the same setup the gateway runs with.
type SessionStoreSuite struct {
	suite.Suite
	container      *tcredis.RedisContainer
	client         *redis.Client
	sessionManager *scs.SessionManager
}

func (s *SessionStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, cacheImageName)
	if err != nil {
		s.T().Skipf("failed to start cache container: %s", err)
	}

	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)

	port, err := container.MappedPort(ctx, "6379")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	s.Require().NoError(s.client.Ping(ctx).Err())

	s.sessionManager = scs.New()
	s.sessionManager.Store = goredisstore.New(s.client)
	s.sessionManager.IdleTimeout = 20 * time.Minute
}

func (s *SessionStoreSuite) TearDownSuite() {
	if s.client != nil {
		s.client.Close()
	}
	if s.container != nil {
		if err := testcontainers.TerminateContainer(s.container); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}
}

func (s *SessionStoreSuite) newSessionContext() context.Context {
	ctx, err := s.sessionManager.Load(context.Background(), "")
	s.Require().NoError(err)

	return ctx
}

func (s *SessionStoreSuite) commitAndReload(ctx context.Context) context.Context {
	token, _, err := s.sessionManager.Commit(ctx)
	s.Require().NoError(err)

	reloaded, err := s.sessionManager.Load(context.Background(), token)
	s.Require().NoError(err)

	return reloaded
}

func (s *SessionStoreSuite) TestSelectionSurvivesStoreRoundTrip() {
	layout := domain.DefaultLayout()

	selection := domain.NewSelection("42", "Il Grande Film", "/posters/42.jpg", domain.Showtime{
		Date:   "15-06-2024",
		Time:   "21:30",
		Cinema: "Cinema Adriano",
	}, domain.DefaultPricePerSeat, 0)

	for _, id := range []string{"D5", "D6", "D7"} {
		seat, ok := layout.SeatByID(id)
		s.Require().True(ok)
		s.Require().NoError(selection.Toggle(seat))
	}

	ctx := s.newSessionContext()

	data, err := json.Marshal(selection)
	s.Require().NoError(err)
	s.sessionManager.Put(ctx, "selection", data)

	ctx = s.commitAndReload(ctx)

	var restored domain.Selection
	s.Require().NoError(json.Unmarshal(s.sessionManager.GetBytes(ctx, "selection"), &restored))

	s.Equal(selection.ID, restored.ID)
	s.Equal([]string{"D5", "D6", "D7"}, restored.SeatIDs())
	s.Equal("25.50", restored.Total().StringFixed(2))

	// Membership must keep working after the round trip.
	seat, _ := layout.SeatByID("D5")
	s.Require().NoError(restored.Toggle(seat))
	s.Equal([]string{"D6", "D7"}, restored.SeatIDs())
}

func (s *SessionStoreSuite) TestSelectionSurvivesTokenRenewal() {
	ctx := s.newSessionContext()

	selection := domain.NewSelection("42", "Il Grande Film", "/posters/42.jpg", domain.Showtime{
		Date:   "15-06-2024",
		Time:   "21:30",
		Cinema: "Cinema Adriano",
	}, domain.DefaultPricePerSeat, 0)

	data, err := json.Marshal(selection)
	s.Require().NoError(err)
	s.sessionManager.Put(ctx, "selection", data)

	// Login renews the session token; the selection must carry over.
	s.Require().NoError(s.sessionManager.RenewToken(ctx))
	s.sessionManager.Put(ctx, "userID", 7)

	ctx = s.commitAndReload(ctx)

	s.Equal(7, s.sessionManager.GetInt(ctx, "userID"))

	var restored domain.Selection
	s.Require().NoError(json.Unmarshal(s.sessionManager.GetBytes(ctx, "selection"), &restored))
	s.Equal(selection.ID, restored.ID)
}

func TestSessionStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	suite.Run(t, new(SessionStoreSuite))
}
