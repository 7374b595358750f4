package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"lounge/internal/services"
)

const validCatalogJSON = `{
  "destinations": [
    {
      "id": "paris",
      "title": "Paris",
      "region": "France",
      "summary": "The City of Light.",
      "facts": ["Eiffel Tower", "Louvre Museum"],
      "imageNames": ["Paris.png"],
      "audioName": "paris_narration.mp3",
      "captions": [
        {"start": 0.0, "end": 2.5, "text": "Welcome to Paris"},
        {"start": 2.0, "end": 4.0, "text": "The Seine flows here"}
      ],
      "quiz": [
        {"question": "Which river runs through Paris?", "options": ["Seine", "Thames"], "correctIndex": 0},
        {"question": "Where is the Mona Lisa?", "options": ["Orsay", "Louvre"], "correctIndex": 1}
      ]
    },
    {
      "id": "kyoto",
      "title": "Kyoto",
      "region": "Japan",
      "summary": "Historic temples.",
      "facts": [],
      "imageNames": ["Kyoto"],
      "audioName": "kyoto_narration.mp3"
    }
  ]
}`

func TestLoadCatalogFallsBackToSeed(t *testing.T) {
	tests := []struct {
		name   string
		source []byte
	}{
		{"nil source", nil},
		{"empty source", []byte{}},
		{"not json", []byte("definitely not json")},
		{"wrong shape", []byte(`{"destinations": "nope"}`)},
		{"empty array", []byte(`{"destinations": []}`)},
		{"missing id", []byte(`{"destinations": [{"title": "Paris"}]}`)},
		{"missing title", []byte(`{"destinations": [{"id": "paris"}]}`)},
		{"duplicate id", []byte(`{"destinations": [
			{"id": "paris", "title": "Paris"},
			{"id": "paris", "title": "Paris Again"}
		]}`)},
	}

	seed := services.SeedCatalog()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.LoadCatalog(tt.source)
			require.NotEmpty(t, got)
			require.Len(t, got, len(seed))
			require.Equal(t, seed[0].ID, got[0].ID)
		})
	}
}

func TestLoadCatalogAllOrNothing(t *testing.T) {
	// One bad record poisons the whole document; no partial catalogs.
	source := []byte(`{"destinations": [
		{"id": "paris", "title": "Paris"},
		{"id": "", "title": "Broken"}
	]}`)

	got := services.LoadCatalog(source)
	require.Equal(t, services.SeedCatalog()[0].ID, got[0].ID)
}

func TestLoadCatalogDecodesValidDocument(t *testing.T) {
	got := services.LoadCatalog([]byte(validCatalogJSON))
	require.Len(t, got, 2)

	paris := got[0]
	require.Equal(t, "paris", paris.ID)
	require.Equal(t, "Paris", paris.Title)
	require.Equal(t, "France", paris.Region)
	require.Equal(t, []string{"Eiffel Tower", "Louvre Museum"}, paris.Facts)
	require.Equal(t, []string{"Paris.png"}, paris.ImageNames)

	// narrationFile reads from the audioName wire key.
	require.Equal(t, "paris_narration.mp3", paris.NarrationFile)

	require.Len(t, paris.Captions, 2)
	require.Equal(t, 0.0, paris.Captions[0].Start)
	require.Equal(t, 2.5, paris.Captions[0].End)
	require.Equal(t, "Welcome to Paris", paris.Captions[0].Text)

	require.Len(t, paris.Quiz, 2)
	require.Equal(t, "Which river runs through Paris?", paris.Quiz[0].Question)
	require.Equal(t, 0, paris.Quiz[0].CorrectIndex)
	require.Equal(t, 1, paris.Quiz[1].CorrectIndex)

	kyoto := got[1]
	require.Nil(t, kyoto.Captions)
	require.Empty(t, kyoto.Quiz)
	require.Empty(t, kyoto.Facts)
}

func TestLoadCatalogAssignsQuestionIDs(t *testing.T) {
	got := services.LoadCatalog([]byte(validCatalogJSON))

	seen := make(map[string]struct{})
	for _, q := range got[0].Quiz {
		require.NotEmpty(t, q.ID)
		_, dup := seen[q.ID]
		require.False(t, dup)
		seen[q.ID] = struct{}{}
	}
}

func TestLoadCatalogDeterministicContent(t *testing.T) {
	first := services.LoadCatalog([]byte(validCatalogJSON))
	second := services.LoadCatalog([]byte(validCatalogJSON))

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].ID, second[i].ID)
		require.Equal(t, first[i].Title, second[i].Title)
		require.Equal(t, first[i].Facts, second[i].Facts)
		require.Equal(t, first[i].NarrationFile, second[i].NarrationFile)
	}
}

func TestSeedCatalogUniqueNonEmptyIDs(t *testing.T) {
	seen := make(map[string]struct{})
	for _, d := range services.SeedCatalog() {
		require.NotEmpty(t, d.ID)
		_, dup := seen[d.ID]
		require.False(t, dup)
		seen[d.ID] = struct{}{}
	}
}
