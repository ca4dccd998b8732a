package main

import (
	"path/filepath"
	"testing"

	"folio/views"
)

// forEachStore runs a test against both Store implementations.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("sqlite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")
		s, err := newSQLiteStore(path)
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer s.Close()
		fn(t, s)
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, newMemStore())
	})
}

func TestContentOrdering(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		for _, it := range []views.ContentItem{
			{Type: "project", Title: "Third", OrderIndex: 2},
			{Type: "project", Title: "First", OrderIndex: 0},
			{Type: "project", Title: "Second", OrderIndex: 1},
			{Type: "hobby", Title: "Other", OrderIndex: 0},
		} {
			if _, err := s.CreateContent(it); err != nil {
				t.Fatalf("CreateContent failed: %v", err)
			}
		}

		got, err := s.ListContent("project")
		if err != nil {
			t.Fatalf("ListContent failed: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("ListContent count = %d, want 3", len(got))
		}
		for i, want := range []string{"First", "Second", "Third"} {
			if got[i].Title != want {
				t.Errorf("ListContent[%d].Title = %q, want %q", i, got[i].Title, want)
			}
		}
	})
}

func TestGetSingleton(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		if _, err := s.GetSingleton("cv"); err != ErrNotFound {
			t.Errorf("GetSingleton on empty type = %v, want ErrNotFound", err)
		}

		if _, err := s.CreateContent(views.ContentItem{Type: "cv", Title: "My CV"}); err != nil {
			t.Fatalf("CreateContent failed: %v", err)
		}
		got, err := s.GetSingleton("cv")
		if err != nil {
			t.Fatalf("GetSingleton failed: %v", err)
		}
		if got.Title != "My CV" {
			t.Errorf("Title = %q, want %q", got.Title, "My CV")
		}

		if _, err := s.CreateContent(views.ContentItem{Type: "cv", Title: "Second CV"}); err != nil {
			t.Fatalf("CreateContent failed: %v", err)
		}
		if _, err := s.GetSingleton("cv"); err != ErrMultipleRows {
			t.Errorf("GetSingleton with two rows = %v, want ErrMultipleRows", err)
		}
	})
}

func TestUpdateContentKeepsMedia(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		created, err := s.CreateContent(views.ContentItem{Type: "about", Title: "About", MediaURL: "media/photo.jpg"})
		if err != nil {
			t.Fatalf("CreateContent failed: %v", err)
		}
		created.Title = "Updated"
		if err := s.UpdateContent(created); err != nil {
			t.Fatalf("UpdateContent failed: %v", err)
		}
		got, err := s.GetContent(created.ID)
		if err != nil {
			t.Fatalf("GetContent failed: %v", err)
		}
		if got.Title != "Updated" {
			t.Errorf("Title = %q, want %q", got.Title, "Updated")
		}
		if got.MediaURL != "media/photo.jpg" {
			t.Errorf("MediaURL = %q, want unchanged", got.MediaURL)
		}

		if err := s.UpdateContent(views.ContentItem{ID: "missing"}); err != ErrNotFound {
			t.Errorf("UpdateContent on missing id = %v, want ErrNotFound", err)
		}
	})
}

func TestArticleSlugLookup(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		_, err := s.CreateArticle(views.Article{Title: "Bridge", Slug: "bridge", Type: "project", Status: "published"})
		if err != nil {
			t.Fatalf("CreateArticle failed: %v", err)
		}

		got, err := s.GetArticleBySlug("bridge")
		if err != nil {
			t.Fatalf("GetArticleBySlug failed: %v", err)
		}
		if got.Title != "Bridge" {
			t.Errorf("Title = %q, want %q", got.Title, "Bridge")
		}

		if _, err := s.GetArticleBySlug("missing"); err != ErrNotFound {
			t.Errorf("GetArticleBySlug(missing) = %v, want ErrNotFound", err)
		}
	})
}

func TestListArticlesPublishedOnly(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		for _, a := range []views.Article{
			{Slug: "pub", Type: "project", Status: "published", OrderIndex: 1},
			{Slug: "draft", Type: "project", Status: "draft", OrderIndex: 0},
			{Slug: "archived", Type: "project", Status: "archived", OrderIndex: 2},
			{Slug: "research-pub", Type: "research", Status: "published"},
		} {
			if _, err := s.CreateArticle(a); err != nil {
				t.Fatalf("CreateArticle failed: %v", err)
			}
		}

		got, err := s.ListArticles("project", true)
		if err != nil {
			t.Fatalf("ListArticles failed: %v", err)
		}
		if len(got) != 1 || got[0].Slug != "pub" {
			t.Errorf("published projects = %v, want [pub]", got)
		}

		all, err := s.ListArticles("project", false)
		if err != nil {
			t.Fatalf("ListArticles failed: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("all projects count = %d, want 3", len(all))
		}
	})
}

func TestDeleteArticleCascades(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		art, err := s.CreateArticle(views.Article{Slug: "doomed", Type: "project", Status: "draft"})
		if err != nil {
			t.Fatalf("CreateArticle failed: %v", err)
		}
		for i := 0; i < 3; i++ {
			if _, err := s.CreateBlock(views.ArticleBlock{ArticleID: art.ID, BlockType: "text", OrderIndex: i}); err != nil {
				t.Fatalf("CreateBlock failed: %v", err)
			}
		}

		if err := s.DeleteArticle(art.ID); err != nil {
			t.Fatalf("DeleteArticle failed: %v", err)
		}

		if _, err := s.GetArticle(art.ID); err != ErrNotFound {
			t.Errorf("GetArticle after delete = %v, want ErrNotFound", err)
		}
		blocks, err := s.ListBlocks(art.ID)
		if err != nil {
			t.Fatalf("ListBlocks failed: %v", err)
		}
		if len(blocks) != 0 {
			t.Errorf("blocks after cascade delete = %d, want 0", len(blocks))
		}
	})
}

func TestBlockPartialUpdate(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		art, err := s.CreateArticle(views.Article{Slug: "partial", Type: "project", Status: "draft"})
		if err != nil {
			t.Fatalf("CreateArticle failed: %v", err)
		}
		blk, err := s.CreateBlock(views.ArticleBlock{
			ArticleID: art.ID,
			BlockType: "image",
			ImageURL:  "/public/uploads/media/old.jpg",
			ImageAlt:  "Old alt",
		})
		if err != nil {
			t.Fatalf("CreateBlock failed: %v", err)
		}

		if err := s.UpdateBlock(blk.ID, map[string]string{"image_alt": "New alt"}); err != nil {
			t.Fatalf("UpdateBlock failed: %v", err)
		}

		got, err := s.GetBlock(blk.ID)
		if err != nil {
			t.Fatalf("GetBlock failed: %v", err)
		}
		if got.ImageAlt != "New alt" {
			t.Errorf("ImageAlt = %q, want %q", got.ImageAlt, "New alt")
		}
		if got.ImageURL != "/public/uploads/media/old.jpg" {
			t.Errorf("ImageURL = %q, want unchanged", got.ImageURL)
		}

		if err := s.UpdateBlock(blk.ID, map[string]string{"bogus": "x"}); err == nil {
			t.Error("UpdateBlock with unknown field should fail")
		}
	})
}

func TestDeleteBlockLeavesGaps(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		art, err := s.CreateArticle(views.Article{Slug: "gaps", Type: "project", Status: "draft"})
		if err != nil {
			t.Fatalf("CreateArticle failed: %v", err)
		}
		var ids []string
		for i := 0; i < 3; i++ {
			blk, err := s.CreateBlock(views.ArticleBlock{ArticleID: art.ID, BlockType: "text", OrderIndex: i})
			if err != nil {
				t.Fatalf("CreateBlock failed: %v", err)
			}
			ids = append(ids, blk.ID)
		}

		// Deleting the middle block does not renumber the rest.
		if err := s.DeleteBlock(ids[1]); err != nil {
			t.Fatalf("DeleteBlock failed: %v", err)
		}
		blocks, err := s.ListBlocks(art.ID)
		if err != nil {
			t.Fatalf("ListBlocks failed: %v", err)
		}
		if len(blocks) != 2 {
			t.Fatalf("blocks count = %d, want 2", len(blocks))
		}
		if blocks[0].OrderIndex != 0 || blocks[1].OrderIndex != 2 {
			t.Errorf("order indexes = %d,%d, want 0,2", blocks[0].OrderIndex, blocks[1].OrderIndex)
		}
	})
}

func TestReorderBlocks(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		art, err := s.CreateArticle(views.Article{Slug: "reorder", Type: "project", Status: "draft"})
		if err != nil {
			t.Fatalf("CreateArticle failed: %v", err)
		}
		var ids []string
		for i := 0; i < 3; i++ {
			blk, err := s.CreateBlock(views.ArticleBlock{ArticleID: art.ID, BlockType: "text", OrderIndex: i})
			if err != nil {
				t.Fatalf("CreateBlock failed: %v", err)
			}
			ids = append(ids, blk.ID)
		}

		// Reverse the list; indexes must come back contiguous from zero.
		if err := s.ReorderBlocks(art.ID, []string{ids[2], ids[1], ids[0]}); err != nil {
			t.Fatalf("ReorderBlocks failed: %v", err)
		}
		blocks, err := s.ListBlocks(art.ID)
		if err != nil {
			t.Fatalf("ListBlocks failed: %v", err)
		}
		for i, want := range []string{ids[2], ids[1], ids[0]} {
			if blocks[i].ID != want {
				t.Errorf("blocks[%d].ID = %q, want %q", i, blocks[i].ID, want)
			}
			if blocks[i].OrderIndex != i {
				t.Errorf("blocks[%d].OrderIndex = %d, want %d", i, blocks[i].OrderIndex, i)
			}
		}
	})
}

func TestCVSectionCRUD(t *testing.T) {
	forEachStore(t, func(t *testing.T, s Store) {
		sec, err := s.CreateCVSection(views.CVSection{
			SectionType: "experience",
			Title:       "Engineer",
			StartDate:   "2020-03-01",
			Current:     true,
			OrderIndex:  1,
		})
		if err != nil {
			t.Fatalf("CreateCVSection failed: %v", err)
		}
		if _, err := s.CreateCVSection(views.CVSection{SectionType: "header", Title: "Jane Doe", OrderIndex: 0}); err != nil {
			t.Fatalf("CreateCVSection failed: %v", err)
		}

		sections, err := s.ListCVSections()
		if err != nil {
			t.Fatalf("ListCVSections failed: %v", err)
		}
		if len(sections) != 2 || sections[0].SectionType != "header" {
			t.Errorf("sections = %v, want header first", sections)
		}

		sec.Title = "Senior Engineer"
		sec.Current = false
		sec.EndDate = "2024-06-01"
		if err := s.UpdateCVSection(sec); err != nil {
			t.Fatalf("UpdateCVSection failed: %v", err)
		}
		got, err := s.GetCVSection(sec.ID)
		if err != nil {
			t.Fatalf("GetCVSection failed: %v", err)
		}
		if got.Title != "Senior Engineer" || got.Current || got.EndDate != "2024-06-01" {
			t.Errorf("updated section = %+v", got)
		}

		if err := s.DeleteCVSection(sec.ID); err != nil {
			t.Fatalf("DeleteCVSection failed: %v", err)
		}
		if _, err := s.GetCVSection(sec.ID); err != ErrNotFound {
			t.Errorf("GetCVSection after delete = %v, want ErrNotFound", err)
		}
	})
}
