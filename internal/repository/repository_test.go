package repository

import (
	"testing"

	"github.com/lshigami/learnhub/internal/content"
	"github.com/lshigami/learnhub/internal/model"
	"github.com/lshigami/learnhub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionRepositoryFallsBackToDefaults(t *testing.T) {
	repo := NewQuestionRepository(storage.NewMemoryStore())

	questions, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, content.DefaultQuestions(), questions)
}

func TestQuestionRepositoryMalformedFallsBack(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyQuestions, "garbage"))

	repo := NewQuestionRepository(store)
	questions, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, content.DefaultQuestions(), questions)
}

func TestQuestionRepositoryAddPersistsFullList(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewQuestionRepository(store)

	added := model.Question{
		ID:            "custom",
		Text:          "2 + 2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: 1,
		Subject:       "Mathematics",
	}
	require.NoError(t, repo.Add(added))

	questions, err := repo.List()
	require.NoError(t, err)
	// Add seeds the defaults plus the new question.
	assert.Len(t, questions, len(content.DefaultQuestions())+1)
	assert.Equal(t, added, questions[len(questions)-1])
}

func TestMaterialRepositoryFallbackAndAdd(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewMaterialRepository(store)

	materials, err := repo.List()
	require.NoError(t, err)
	assert.Equal(t, content.DefaultMaterials(), materials)

	added := model.Material{ID: "m1", Title: "Notes", Content: "text", Subject: "Physics"}
	require.NoError(t, repo.Add(added))

	materials, err = repo.List()
	require.NoError(t, err)
	assert.Equal(t, added, materials[len(materials)-1])
}

func TestAccessCodeRepositoryFindIsCaseInsensitive(t *testing.T) {
	repo := NewAccessCodeRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Append("edu-7k9d-2x3f", "a@x.com"))

	found, err := repo.FindByCode("EDU-7K9D-2X3F")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a@x.com", found.Email)
}

func TestAccessCodeRepositoryFirstMatchWins(t *testing.T) {
	repo := NewAccessCodeRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Append("EDU-7K9D-2X3F", "a@x.com"))
	require.NoError(t, repo.Append("EDU-7K9D-2X3F", "a@x.com"))

	bindings, err := repo.All()
	require.NoError(t, err)
	assert.Len(t, bindings, 2, "appends are never deduplicated")

	found, err := repo.FindByCode("EDU-7K9D-2X3F")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "a@x.com", found.Email)
}

func TestAccessCodeRepositoryUnknownCode(t *testing.T) {
	repo := NewAccessCodeRepository(storage.NewMemoryStore())

	found, err := repo.FindByCode("EDU-0000-0000")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestSessionRepositoryRoundTrip(t *testing.T) {
	repo := NewSessionRepository(storage.NewMemoryStore())

	user := &model.User{ID: "user-1", Username: "alice", Email: "a@x.com", AccessCode: "EDU-7K9D-2X3F", Role: model.RoleUser}
	require.NoError(t, repo.Save(user))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, user, loaded)

	require.NoError(t, repo.Clear())
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionRepositoryIncompleteRecord(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(storage.KeyUser, map[string]string{"id": "user-1"}))

	repo := NewSessionRepository(store)
	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded, "a record without an email is treated as absent")
}
