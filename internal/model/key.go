package model

// KeySet is the append-only set of all API keys ever issued. Membership is the
// sole authorization check for drop table mutations; keys carry no identity,
// never expire and are never revoked.
type KeySet struct {
	Keys []string `json:"keys"`
}

func (s *KeySet) Contains(key string) bool {
	for _, k := range s.Keys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *KeySet) Append(key string) {
	s.Keys = append(s.Keys, key)
}
