package services

import (
	"context"
	"log"

	"texpress/internal/domain"

	"golang.org/x/sync/errgroup"
)

type HomeService struct {
	hero    *HeroService
	catalog *CatalogService
}

func NewHomeService(hero *HeroService, catalog *CatalogService) *HomeService {
	return &HomeService{hero: hero, catalog: catalog}
}

type HomePage struct {
	Sections    []domain.HeroSection `json:"sections"`
	BestSellers []domain.Produit     `json:"bestSellers"`
}

// Load assembles the homepage payload. Both fetches run concurrently and
// each degrades to an empty list on failure; the homepage renders no matter
// what the storage layer is doing.
func (s *HomeService) Load(ctx context.Context) *HomePage {
	page := &HomePage{
		Sections:    []domain.HeroSection{},
		BestSellers: []domain.Produit{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sections, err := s.hero.ListActive(gctx)
		if err != nil {
			log.Printf("hero sections lookup failed: %v", err)
			return nil
		}
		page.Sections = sections
		return nil
	})
	g.Go(func() error {
		page.BestSellers = s.catalog.BestSellers(gctx, 8)
		return nil
	})
	_ = g.Wait()

	return page
}
