package constants

// Play field geometry in world units
// X is lateral, Z is forward; entities spawn at negative Z and scroll toward +Z
const (
	// FieldHalfWidth bounds X to [-FieldHalfWidth, FieldHalfWidth]
	FieldHalfWidth = 12.0

	// PlayerMinZ is the farthest forward the player may move
	PlayerMinZ = -10.0

	// PlayerMaxZ is the farthest back the player may move
	PlayerMaxZ = 4.0

	// SpawnZ is the far edge where entities appear
	SpawnZ = -70.0

	// DespawnZ is the depth past the player's plane where entities are removed
	DespawnZ = 8.0

	// PlayerHalfWidth and PlayerHalfDepth are the player box half extents
	PlayerHalfWidth = 0.8
	PlayerHalfDepth = 0.8
)
