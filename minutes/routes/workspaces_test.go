package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"minutes/minutes/config"
	"minutes/minutes/controllers"
	"minutes/minutes/sources/psql/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type fakeWorkspaceStore struct {
	workspaces map[uuid.UUID]*models.Workspace
	members    map[uuid.UUID][]int
}

func newFakeWorkspaceStore() *fakeWorkspaceStore {
	return &fakeWorkspaceStore{
		workspaces: map[uuid.UUID]*models.Workspace{},
		members:    map[uuid.UUID][]int{},
	}
}

func (f *fakeWorkspaceStore) CreateWorkspace(ctx context.Context, workspace *models.Workspace) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}
	cp := *workspace
	f.workspaces[workspace.ID] = &cp
	f.members[workspace.ID] = []int{workspace.OwnerID}
	return nil
}

func (f *fakeWorkspaceStore) GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	workspace, ok := f.workspaces[id]
	if !ok {
		return nil, nil
	}
	cp := *workspace
	return &cp, nil
}

func (f *fakeWorkspaceStore) AddMember(ctx context.Context, workspaceID uuid.UUID, userID int) error {
	f.members[workspaceID] = append(f.members[workspaceID], userID)
	return nil
}

func (f *fakeWorkspaceStore) CountMembers(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	return int64(len(f.members[workspaceID])), nil
}

type zeroCounter struct{}

func (zeroCounter) CountMeetingsSince(ctx context.Context, workspaceID uuid.UUID, since time.Time) (int64, error) {
	return 0, nil
}

func (zeroCounter) CountActionItems(ctx context.Context, workspaceID uuid.UUID, status string) (int64, error) {
	return 0, nil
}

func testToken(t *testing.T, cfg config.Config) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func newWorkspaceTestRouter(store *fakeWorkspaceStore, cfg config.Config) http.Handler {
	workspaces := controllers.NewWorkspacesController(store, zeroCounter{}, zeroCounter{})
	meetings := controllers.NewMeetingsController(nil, nil, nil, nil, nil, nil)
	items := controllers.NewActionItemsController(nil)
	chat := controllers.NewChatController(nil, nil, nil)
	return WorkspaceRoutes(workspaces, meetings, items, chat, cfg)
}

func TestAddMemberRoute(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	store := newFakeWorkspaceStore()
	router := newWorkspaceTestRouter(store, cfg)
	token := testToken(t, cfg)

	workspace := &models.Workspace{Name: "Platform Team", OwnerID: 1}
	if err := store.CreateWorkspace(context.Background(), workspace); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/"+workspace.ID.String()+"/members", strings.NewReader(`{"userId": 7}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"success":true`) {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
	count, _ := store.CountMembers(context.Background(), workspace.ID)
	if count != 2 {
		t.Errorf("expected owner plus new member, got %d", count)
	}
}

func TestAddMemberRouteStatusMapping(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret"}
	store := newFakeWorkspaceStore()
	router := newWorkspaceTestRouter(store, cfg)
	token := testToken(t, cfg)

	workspace := &models.Workspace{Name: "Platform Team", OwnerID: 1}
	if err := store.CreateWorkspace(context.Background(), workspace); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	cases := []struct {
		name  string
		path  string
		body  string
		token string
		want  int
	}{
		{"unknown workspace", "/" + uuid.NewString() + "/members", `{"userId": 7}`, token, http.StatusNotFound},
		{"missing userId", "/" + workspace.ID.String() + "/members", `{}`, token, http.StatusBadRequest},
		{"bad workspace id", "/not-a-uuid/members", `{"userId": 7}`, token, http.StatusBadRequest},
		{"no token", "/" + workspace.ID.String() + "/members", `{"userId": 7}`, "", http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tc.path, strings.NewReader(tc.body))
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tc.want {
				t.Errorf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}
