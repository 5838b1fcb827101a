package models

// SuggestionRecord representa una sugerencia pendiente de revisión
type SuggestionRecord struct {
	ID         int64  `bson:"id" json:"id"`
	AuthorID   string `bson:"author_id" json:"author_id"`
	Text       string `bson:"text" json:"text"`
	StaffMsgID string `bson:"staff_msg_id" json:"staff_msg_id"`
}

// GuildChannels holds the configured channel ids for a guild.
// An empty string means the channel has not been configured yet.
type GuildChannels struct {
	Staff       string `bson:"staff" json:"staff"`
	Public      string `bson:"public" json:"public"`
	Suggestions string `bson:"suggestions" json:"suggestions"`
}

// GuildConfig representa el documento completo de un servidor:
// canales configurados, contador de ids y sugerencias pendientes.
// El mapa 'pending' usa el id de sugerencia codificado como string.
type GuildConfig struct {
	Channels GuildChannels                `bson:"channels" json:"channels"`
	Pending  map[string]*SuggestionRecord `bson:"pending" json:"pending"`
	NextID   int64                        `bson:"next_id" json:"next_id"`
	Blocked  []string                     `bson:"blocked,omitempty" json:"blocked,omitempty"`
}

// NewGuildConfig creates an empty configuration for a guild.
// Guild configs are created lazily on first interaction.
func NewGuildConfig() *GuildConfig {
	return &GuildConfig{
		Pending: make(map[string]*SuggestionRecord),
		NextID:  1,
	}
}

// Clone returns a deep copy of the config. Handlers always receive
// copies, never live references into the store's pending map.
func (g *GuildConfig) Clone() *GuildConfig {
	c := &GuildConfig{
		Channels: g.Channels,
		Pending:  make(map[string]*SuggestionRecord, len(g.Pending)),
		NextID:   g.NextID,
	}
	for k, v := range g.Pending {
		rec := *v
		c.Pending[k] = &rec
	}
	if len(g.Blocked) > 0 {
		c.Blocked = append([]string(nil), g.Blocked...)
	}
	return c
}
