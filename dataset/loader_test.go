package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "foods.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ParsesAndClassifiesRows(t *testing.T) {
	path := writeTempCSV(t,
		" Food Name ,Category,Calories,Carbs,Fats,Protein,Fiber,GI,GL,Insulin Index,Processed Level,recommendation,portion_guidance,prepration_method\n"+
			"Idli,South Indian Main,58,12,0.4,2,0.8,52,8,60,minimally processed,ideal_diabetic_food,2 pieces,steamed\n"+
			"Gulab Jamun,Mithai,175,30,7,2,0.5,75,22,80,processed,avoid,1 piece,deep fried\n")

	foods, err := Load(path)
	require.NoError(t, err)
	require.Len(t, foods, 2)

	idli := foods[0]
	assert.Equal(t, "Idli", idli.Name)
	assert.Equal(t, GroupMain, idli.Group)
	assert.True(t, idli.DiabeticFriendly)
	assert.Equal(t, 58.0, idli.Calories)
	assert.Equal(t, 52.0, idli.GlycemicIndex)
	assert.Equal(t, "steamed", idli.Preparation)

	jamun := foods[1]
	assert.Equal(t, GroupDessert, jamun.Group)
	assert.False(t, jamun.DiabeticFriendly)
}

func TestLoad_TrimsColumnNames(t *testing.T) {
	path := writeTempCSV(t,
		"  Food Name  ,  Category ,Calories\n"+
			"Dosa, Main ,120\n")

	foods, err := Load(path)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Dosa", foods[0].Name)
	assert.Equal(t, 120.0, foods[0].Calories)
}

func TestLoad_MissingFeatureColumnIsZero(t *testing.T) {
	// No GL or Insulin Index columns at all.
	path := writeTempCSV(t,
		"Food Name,Category,Calories,Carbs,Fats,Protein,Fiber,GI\n"+
			"Poha,Main,130,25,2,2.5,1,55\n")

	foods, err := Load(path)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Zero(t, foods[0].GlycemicLoad)
	assert.Zero(t, foods[0].InsulinIndex)
}

func TestLoad_MalformedNumbersAreZero(t *testing.T) {
	path := writeTempCSV(t,
		"Food Name,Category,Calories,GI\n"+
			"Upma,Main,not-a-number,\n")

	foods, err := Load(path)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Zero(t, foods[0].Calories)
	assert.Zero(t, foods[0].GlycemicIndex)
}

func TestLoad_SkipsBlankNames(t *testing.T) {
	path := writeTempCSV(t,
		"Food Name,Category,Calories\n"+
			"Idli,Main,58\n"+
			"   ,Main,100\n")

	foods, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestLoad_MissingFileIsUnavailable(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset unavailable")
}

func TestLoad_MissingNameColumnIsUnavailable(t *testing.T) {
	path := writeTempCSV(t, "Category,Calories\nMain,100\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "gulab jamun", NameKey("  Gulab Jamun "))
}
