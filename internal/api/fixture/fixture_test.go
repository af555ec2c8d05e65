package fixture

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryConstantIsRegistered(t *testing.T) {
	names := []string{
		AuthLogin, AuthRegister, AuthSendCode, AuthProfile, AuthProfileUpdate,
		EncyclopediaHistory, EncyclopediaCrafts, EncyclopediaMasters,
		TutorialList, TutorialDetail, TutorialProgress,
		CommunityPosts, CommunityPostCreate, CommunityPostDetail, CommunityComments, CommunityCommentCreate,
		ShopProducts, ShopProductDetail, ShopCategories, ShopCartAdd, ShopCart, ShopOrderCreate, ShopOrders,
		GameProfile, GameCheckin, GameChallenges, GameChallengeComplete, GameLeaderboard,
	}
	assert.ElementsMatch(t, names, Names())
	for _, n := range names {
		assert.NotEmpty(t, Get(n).Message, n)
	}
}

func TestWithField(t *testing.T) {
	f, err := WithField(TutorialDetail, "id", uint64(7))
	require.NoError(t, err)

	var data map[string]any
	require.NoError(t, json.Unmarshal(f.Data, &data))
	assert.EqualValues(t, 7, data["id"])
	assert.Equal(t, "绒花制作入门教程", data["title"])

	var original map[string]any
	require.NoError(t, json.Unmarshal(Get(TutorialDetail).Data, &original))
	assert.EqualValues(t, 1, original["id"])
}
