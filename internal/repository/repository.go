package repository

import (
	"context"
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

// ImageRemover ilan/yazı silinirken bağlı dosyaları kaldırır
type ImageRemover interface {
	Delete(ctx context.Context, url string) error
}

// removeImages dosyaları siler; hatalar loglanır ve yutulur
func removeImages(ctx context.Context, remover ImageRemover, urls []string) {
	if remover == nil {
		return
	}
	for _, url := range urls {
		if url == "" {
			continue
		}
		if err := remover.Delete(ctx, url); err != nil {
			log.Printf("Could not delete image %s: %v", url, err)
		}
	}
}

// orphanedImages eski listede olup yeni listede olmayan URL'leri döner
func orphanedImages(before, after []string) []string {
	keep := make(map[string]bool, len(after))
	for _, u := range after {
		keep[u] = true
	}
	var orphaned []string
	for _, u := range before {
		if u != "" && !keep[u] {
			orphaned = append(orphaned, u)
			keep[u] = true
		}
	}
	return orphaned
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	if limit > 0 {
		if limit > 100 {
			limit = 100
		}
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	return query
}
