// Package fixture 提供公开接口在演示模式下返回的固定数据
package fixture

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-json"
)

const (
	AuthLogin         = "auth.login"
	AuthRegister      = "auth.register"
	AuthSendCode      = "auth.send_code"
	AuthProfile       = "auth.profile"
	AuthProfileUpdate = "auth.profile_update"

	EncyclopediaHistory = "encyclopedia.history"
	EncyclopediaCrafts  = "encyclopedia.crafts"
	EncyclopediaMasters = "encyclopedia.masters"

	TutorialList     = "tutorial.list"
	TutorialDetail   = "tutorial.detail"
	TutorialProgress = "tutorial.progress"

	CommunityPosts         = "community.posts"
	CommunityPostCreate    = "community.post_create"
	CommunityPostDetail    = "community.post_detail"
	CommunityComments      = "community.comments"
	CommunityCommentCreate = "community.comment_create"

	ShopProducts      = "shop.products"
	ShopProductDetail = "shop.product_detail"
	ShopCategories    = "shop.categories"
	ShopCartAdd       = "shop.cart_add"
	ShopCart          = "shop.cart"
	ShopOrderCreate   = "shop.order_create"
	ShopOrders        = "shop.orders"

	GameProfile           = "game.profile"
	GameCheckin           = "game.checkin"
	GameChallenges        = "game.challenges"
	GameChallengeComplete = "game.challenge_complete"
	GameLeaderboard       = "game.leaderboard"
)

//go:embed data/fixtures.json
var raw []byte

type Fixture struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

var fixtures map[string]Fixture

func init() {
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		panic(fmt.Sprintf("fixture: decode embedded data: %v", err))
	}
}

// Get 未登记的名称会 panic，名称只来自本包常量
func Get(name string) Fixture {
	f, ok := fixtures[name]
	if !ok {
		panic("fixture: unknown " + name)
	}
	return f
}

// WithField 返回覆盖了顶层字段的副本，用于回显路径参数
func WithField(name, key string, value any) (Fixture, error) {
	f := Get(name)
	var data map[string]any
	if err := json.Unmarshal(f.Data, &data); err != nil {
		return Fixture{}, err
	}
	data[key] = value
	encoded, err := json.Marshal(data)
	if err != nil {
		return Fixture{}, err
	}
	f.Data = encoded
	return f, nil
}

// Names 全部已登记的名称
func Names() []string {
	names := make([]string, 0, len(fixtures))
	for k := range fixtures {
		names = append(names, k)
	}
	return names
}
