package jobs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heet2604/food-recommendation-using-ML/dataset"
	"github.com/heet2604/food-recommendation-using-ML/recommend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetHeader = "Food Name,Category,Calories,Carbs,Fats,Protein,Fiber,GI,GL,Insulin Index,Processed Level,recommendation,portion_guidance,prepration_method\n"

func writeDataset(t *testing.T, path string, rows string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(datasetHeader+rows), 0o644))
}

func TestReloadWorker_RebuildSwapsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.csv")
	writeDataset(t, path, "Idli,Main Course,58,12,0.4,2,0.8,52,8,60,minimally processed,ideal_diabetic_food,2 pieces,steamed\n")

	foods, err := dataset.Load(path)
	require.NoError(t, err)
	svc := recommend.NewService(recommend.BuildState(foods))

	w := NewReloadWorker(svc, path, 0)

	writeDataset(t, path,
		"Idli,Main Course,58,12,0.4,2,0.8,52,8,60,minimally processed,ideal_diabetic_food,2 pieces,steamed\n"+
			"Poha,Main Course,130,25,2,2.5,1,54,9,62,minimally processed,ideal_diabetic_food,1 bowl,steamed\n")
	w.rebuild()

	st := svc.State()
	assert.Len(t, st.Foods, 2)
	_, ok := st.Lookup("Poha")
	assert.True(t, ok)
}

func TestReloadWorker_RebuildKeepsStateOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.csv")
	writeDataset(t, path, "Idli,Main Course,58,12,0.4,2,0.8,52,8,60,minimally processed,ideal_diabetic_food,2 pieces,steamed\n")

	foods, err := dataset.Load(path)
	require.NoError(t, err)
	svc := recommend.NewService(recommend.BuildState(foods))
	old := svc.State()

	w := NewReloadWorker(svc, path, 0)
	require.NoError(t, os.Remove(path))
	w.rebuild()

	assert.Same(t, old, svc.State())
}

func TestReloadWorker_FileChanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.csv")
	writeDataset(t, path, "Idli,Main Course,58,12,0.4,2,0.8,52,8,60,minimally processed,ideal_diabetic_food,2 pieces,steamed\n")

	svc := recommend.NewService(recommend.BuildState(nil))
	w := NewReloadWorker(svc, path, 0)

	assert.False(t, w.fileChanged(), "unchanged file must not trigger")

	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
	assert.True(t, w.fileChanged())
	assert.False(t, w.fileChanged(), "same mtime must not trigger twice")
}

func TestReloadWorker_EnqueueDropsWhenPending(t *testing.T) {
	svc := recommend.NewService(recommend.BuildState(nil))
	w := NewReloadWorker(svc, "missing.csv", 0)

	w.Enqueue()
	w.Enqueue() // dropped, channel already holds a trigger

	assert.Len(t, w.triggers, 1)
}
