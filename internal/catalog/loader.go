package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"planweaver/internal/models"
)

// Loader parses and caches the two static reference tables: learning topics
// and niches. Both are loaded once per process and treated as read-only.
type Loader struct {
	mu     sync.RWMutex
	topics []models.CatalogTopic
	niches []models.NicheMeta
}

// NewLoader creates an empty catalog loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads both catalog documents. Topics are required; a missing niches
// table is tolerated because it only carries presentation metadata.
func (l *Loader) Load(topicsPath, nichesPath string) error {
	if err := l.LoadTopics(topicsPath); err != nil {
		return err
	}

	if err := l.LoadNiches(nichesPath); err != nil {
		log.Printf("Warning: failed to load niches catalog: %v", err)
	}

	return nil
}

// LoadTopics parses the topics table from a JSON array document
func (l *Loader) LoadTopics(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read topics catalog: %w", err)
	}

	var topics []models.CatalogTopic
	if err := json.Unmarshal(data, &topics); err != nil {
		return fmt.Errorf("failed to parse topics catalog: %w", err)
	}

	// Drop rows without a topic name or niche; they cannot be matched
	valid := make([]models.CatalogTopic, 0, len(topics))
	for _, topic := range topics {
		if topic.Topic == "" || topic.Niche == "" {
			continue
		}
		valid = append(valid, topic)
	}

	l.mu.Lock()
	l.topics = valid
	l.mu.Unlock()

	log.Printf("Topics catalog loaded: %d entries from %s", len(valid), path)
	return nil
}

// LoadNiches parses the niches table from a JSON array document
func (l *Loader) LoadNiches(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read niches catalog: %w", err)
	}

	var niches []models.NicheMeta
	if err := json.Unmarshal(data, &niches); err != nil {
		return fmt.Errorf("failed to parse niches catalog: %w", err)
	}

	l.mu.Lock()
	l.niches = niches
	l.mu.Unlock()

	log.Printf("Niches catalog loaded: %d entries from %s", len(niches), path)
	return nil
}

// AddTopics programmatically appends topics to the catalog
func (l *Loader) AddTopics(topics ...models.CatalogTopic) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.topics = append(l.topics, topics...)
}

// Topics returns the loaded topics in stored order
func (l *Loader) Topics() []models.CatalogTopic {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.topics
}

// Niches returns the loaded niche metadata
func (l *Loader) Niches() []models.NicheMeta {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.niches
}
