package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const opLogCollection = "admin_op_logs"

// OpLog 后台写操作审计记录
type OpLog struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	TraceID   string             `bson:"trace_id"`
	Admin     string             `bson:"admin"`
	Method    string             `bson:"method"`
	Path      string             `bson:"path"`
	Status    int                `bson:"status"`
	LatencyMs int64              `bson:"latency_ms"`
	ClientIP  string             `bson:"client_ip"`
	CreatedAt time.Time          `bson:"created_at"`
}
