package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	AdminRoleSuper = "super_admin"
)

const (
	AnonymousAuthor = "匿名"
	UnknownUser     = "未知用户"
	TimeLayout      = "2006-01-02 15:04"
	DateLayout      = "2006-01-02"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)
