package models

// GetBlockRequest selects a single block by id.
type GetBlockRequest struct {
	BlockID string
}

// QueryBlocksRequest is a Redisearch query over blocks.
type QueryBlocksRequest struct {
	RedisearchQuery string
	Offset          int
	Limit           int
	IDsOnly         *bool
	SortBy          string
	SortAscending   *bool
}

// GetVerificationsRequest selects the verifications of a level 1 block,
// optionally restricted to one level (2-5).
type GetVerificationsRequest struct {
	BlockID string
	Level   int
}
