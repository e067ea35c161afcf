package sqlstore

import "github.com/idilsaglam/hangman/internal/model"

// DefaultWords is the starter word list, ten words per difficulty.
var DefaultWords = map[model.Difficulty][]string{
	model.Easy: {"бор", "перо", "кот", "дом", "люк", "мел", "рак", "ядро",
		"бак", "баян"},
	model.Medium: {"слово", "город", "право", "книга", "школа", "земля", "спорт",
		"лохань", "ложка", "кость"},
	model.Hard: {"собака", "цунами", "кортик", "снегирь", "солома", "зарница",
		"корабль", "лошадь", "телега", "колесо"},
}

// Seed adds DefaultWords and returns how many were new.
func (s *Store) Seed() (int, error) {
	added := 0
	for _, d := range model.Difficulties() {
		for _, w := range DefaultWords[d] {
			id, err := s.Add(w, d)
			if err != nil {
				return added, err
			}
			if id != 0 {
				added++
			}
		}
	}
	s.log.Info().Int("added", added).Msg("seeded word list")
	return added, nil
}
