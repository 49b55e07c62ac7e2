package content

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gosec/site-backend/internal/uploads"
)

func newTestService(t *testing.T) (*Service, *MemoryStore, string) {
	t.Helper()
	dir := t.TempDir()
	store := NewMemoryStore()
	files, err := uploads.NewDiskStore(dir)
	require.NoError(t, err)
	return NewService(store, files), store, dir
}

func TestListSeedsDefaults(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		want int
	}{
		{"programs", 5},
		{"gallery", 6},
		{"events", 4},
		{"leadership", 8},
	}
	for _, tc := range cases {
		r := ResourceByName(tc.name)
		require.NotNil(t, r)
		docs, err := svc.List(ctx, r)
		require.NoError(t, err)
		assert.Len(t, docs, tc.want, tc.name)

		// second read must not seed again
		docs, err = svc.List(ctx, r)
		require.NoError(t, err)
		assert.Len(t, docs, tc.want, tc.name)
	}
}

func TestListSeedsKeepFixedProgramIDs(t *testing.T) {
	svc, _, _ := newTestService(t)
	docs, err := svc.List(context.Background(), ResourceByName("programs"))
	require.NoError(t, err)

	ids := map[string]bool{}
	for _, d := range docs {
		ids[d["_id"].(string)] = true
	}
	for _, want := range []string{"youth", "family", "culture", "careers", "soccer"} {
		assert.True(t, ids[want], "missing program id %s", want)
	}
}

func TestListOrdersByOrderField(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	r := ResourceByName("media")

	require.NoError(t, store.Insert(ctx, r.Collection, bson.M{"_id": "b", "key": "b", "order": 2}))
	require.NoError(t, store.Insert(ctx, r.Collection, bson.M{"_id": "a", "key": "a", "order": 1}))

	docs, err := svc.List(ctx, r)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0]["_id"])
	assert.Equal(t, "b", docs[1]["_id"])
}

func TestCreateAssignsID(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := ResourceByName("media")

	doc, err := svc.Create(context.Background(), r, bson.M{"key": "logo", "url": "/x.png"})
	require.NoError(t, err)
	id, ok := doc["_id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)

	got, err := svc.Get(context.Background(), r, id)
	require.NoError(t, err)
	assert.Equal(t, "logo", got["key"])
}

func TestUpdatePartialLeavesOtherFields(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	r := ResourceByName("media")

	doc, err := svc.Create(ctx, r, bson.M{"key": "logo", "url": "/x.png", "alt_en": "Logo"})
	require.NoError(t, err)
	id := doc["_id"].(string)

	updated, err := svc.Update(ctx, r, id, bson.M{"url": "/y.png"})
	require.NoError(t, err)
	assert.Equal(t, "/y.png", updated["url"])
	assert.Equal(t, "logo", updated["key"])
	assert.Equal(t, "Logo", updated["alt_en"])
}

func TestUpdateRejectsEmptySet(t *testing.T) {
	svc, _, _ := newTestService(t)
	r := ResourceByName("media")

	doc, err := svc.Create(context.Background(), r, bson.M{"key": "k", "url": "/u"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), r, doc["_id"].(string), bson.M{})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestUpdateMissingDocument(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Update(context.Background(), ResourceByName("media"), "nope", bson.M{"key": "k"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesOwnedUpload(t *testing.T) {
	svc, store, dir := newTestService(t)
	ctx := context.Background()
	r := ResourceByName("gallery")

	_, url, err := svc.files.Save(ctx, r.Name, "pic.png", strings.NewReader("png-bytes"), 9)
	require.NoError(t, err)

	doc := bson.M{"_id": "g1", "title_en": "T", "title_fr": "T", "media_key": "k", "image_url": url}
	require.NoError(t, store.Insert(ctx, r.Collection, doc))

	require.NoError(t, svc.Delete(ctx, r, "g1"))

	_, err = svc.Get(ctx, r, "g1")
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := os.ReadDir(filepath.Join(dir, r.Name))
	require.NoError(t, err)
	assert.Empty(t, entries, "owned upload should be unlinked on delete")
}

func TestDeleteLeavesExternalImageAlone(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	r := ResourceByName("gallery")

	doc := bson.M{"_id": "g2", "title_en": "T", "title_fr": "T", "media_key": "k", "image_url": "https://cdn.example.com/a.png"}
	require.NoError(t, store.Insert(ctx, r.Collection, doc))

	require.NoError(t, svc.Delete(ctx, r, "g2"))
}

func TestSingletonGetSeedsDefault(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	for _, sg := range Singletons {
		doc, err := svc.GetSingleton(ctx, sg)
		require.NoError(t, err)
		assert.NotEmpty(t, doc["_id"], sg.Name)

		again, err := svc.GetSingleton(ctx, sg)
		require.NoError(t, err)
		assert.Equal(t, doc["_id"], again["_id"], "%s must stay a single document", sg.Name)
	}
}

func TestSingletonUpdateMerges(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	hero := Singletons[0]

	seeded, err := svc.GetSingleton(ctx, hero)
	require.NoError(t, err)

	updated, err := svc.UpdateSingleton(ctx, hero, bson.M{"title_en": "New Title"})
	require.NoError(t, err)
	assert.Equal(t, "New Title", updated["title_en"])
	assert.Equal(t, seeded["title_fr"], updated["title_fr"])
}

func TestSingletonUpdateInsertsWhenEmpty(t *testing.T) {
	svc, _, _ := newTestService(t)
	hero := Singletons[0]

	doc, err := svc.UpdateSingleton(context.Background(), hero, bson.M{"title_en": "Only"})
	require.NoError(t, err)
	assert.Equal(t, "Only", doc["title_en"])
	assert.NotEmpty(t, doc["_id"])
}

func TestReplaceImageDeletesOldManagedFile(t *testing.T) {
	svc, _, dir := newTestService(t)
	ctx := context.Background()
	r := ResourceByName("events")

	_, oldURL, err := svc.files.Save(ctx, r.Name, "old.jpg", strings.NewReader("old"), 3)
	require.NoError(t, err)

	newURL, err := svc.ReplaceImage(ctx, r, oldURL, "new.jpg", strings.NewReader("new"), 3)
	require.NoError(t, err)
	assert.NotEqual(t, oldURL, newURL)

	entries, err := os.ReadDir(filepath.Join(dir, r.Name))
	require.NoError(t, err)
	require.Len(t, entries, 1, "old file gone, new file present")
}

func TestToResponseRenamesID(t *testing.T) {
	out := toResponse(bson.M{"_id": "abc", "title_en": "T"})
	assert.Equal(t, "abc", out["id"])
	_, hasInternal := out["_id"]
	assert.False(t, hasInternal)
}
