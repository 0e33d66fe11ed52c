package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"

	"github.com/yungbote/coursekey/internal/data/repos"
	"github.com/yungbote/coursekey/internal/domain"
	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/platform/apierr"
	"github.com/yungbote/coursekey/internal/platform/dbctx"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

type DivisionInput struct {
	Title    string     `json:"title"`
	Kind     string     `json:"kind"`
	Position int        `json:"position"`
	At       *time.Time `json:"timestamp,omitempty"`
}

type ItemInput struct {
	Title string     `json:"title"`
	At    *time.Time `json:"timestamp,omitempty"`
}

type ObjectiveInput struct {
	Text string     `json:"text"`
	At   *time.Time `json:"created_at,omitempty"`
}

type MaterialInput struct {
	Name        string         `json:"name"`
	ContentType string         `json:"content_type"`
	SizeBytes   int64          `json:"size_bytes"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	At          *time.Time     `json:"timestamp,omitempty"`
}

// CourseTree is a course with every level of its hierarchy loaded.
type CourseTree struct {
	Course    *domain.Course  `json:"course"`
	Divisions []*DivisionNode `json:"divisions"`
}

type DivisionNode struct {
	*domain.Division
	Items []*ItemNode `json:"items"`
}

type ItemNode struct {
	*domain.Item
	Objectives []*domain.LearningObjective `json:"objectives"`
	Materials  []*domain.Material          `json:"materials"`
}

type ContentService interface {
	AddDivision(ctx context.Context, courseID string, in DivisionInput) (*domain.Division, error)
	AddItem(ctx context.Context, divisionID string, in ItemInput) (*domain.Item, error)
	AddObjective(ctx context.Context, itemID string, in ObjectiveInput) (*domain.LearningObjective, error)
	AddMaterial(ctx context.Context, itemID string, in MaterialInput) (*domain.Material, error)
	Tree(ctx context.Context, courseID string) (*CourseTree, error)
}

type contentService struct {
	log         *logger.Logger
	courseRepo  repos.CourseRepo
	contentRepo repos.ContentRepo
	clock       Clock
}

func NewContentService(baseLog *logger.Logger, courseRepo repos.CourseRepo, contentRepo repos.ContentRepo, clock Clock) ContentService {
	if clock == nil {
		clock = SystemClock
	}
	return &contentService{
		log:         baseLog.With("service", "ContentService"),
		courseRepo:  courseRepo,
		contentRepo: contentRepo,
		clock:       clock,
	}
}

func (s *contentService) AddDivision(ctx context.Context, courseID string, in DivisionInput) (*domain.Division, error) {
	dbc := dbctx.New(ctx)
	course, err := s.courseRepo.GetByID(dbc, courseID)
	if err != nil {
		return nil, mapError(err, "course")
	}
	kind := strings.ToLower(strings.TrimSpace(in.Kind))
	switch kind {
	case "":
		kind = domain.DivisionKindTopic
	case domain.DivisionKindTopic, domain.DivisionKindWeek:
	default:
		return nil, apierr.InvalidInput(fmt.Errorf("division kind must be %q or %q", domain.DivisionKindTopic, domain.DivisionKindWeek))
	}

	at, explicit := stampTime(s.clock, in.At)
	var out *domain.Division
	err = mint(at, explicit, func(at time.Time) error {
		id, err := idgen.DivisionID(in.Title, course.Name, at)
		if err != nil {
			return err
		}
		row := &domain.Division{ID: id, CourseID: course.ID, Kind: kind, Title: in.Title, Position: in.Position, CreatedAt: at}
		if err := s.contentRepo.CreateDivision(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "division")
	}
	s.log.Debug("division added", "course_id", course.ID, "division_id", out.ID)
	return out, nil
}

func (s *contentService) AddItem(ctx context.Context, divisionID string, in ItemInput) (*domain.Item, error) {
	dbc := dbctx.New(ctx)
	div, course, err := s.loadDivision(dbc, divisionID)
	if err != nil {
		return nil, err
	}
	at, explicit := stampTime(s.clock, in.At)
	var out *domain.Item
	err = mint(at, explicit, func(at time.Time) error {
		id, err := idgen.ItemID(in.Title, div.Title, course.Name, at)
		if err != nil {
			return err
		}
		row := &domain.Item{ID: id, DivisionID: div.ID, CourseID: course.ID, Title: in.Title, CreatedAt: at}
		if err := s.contentRepo.CreateItem(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "item")
	}
	return out, nil
}

func (s *contentService) AddObjective(ctx context.Context, itemID string, in ObjectiveInput) (*domain.LearningObjective, error) {
	dbc := dbctx.New(ctx)
	item, div, course, err := s.loadItem(dbc, itemID)
	if err != nil {
		return nil, err
	}
	at, explicit := stampTime(s.clock, in.At)
	var out *domain.LearningObjective
	err = mint(at, explicit, func(at time.Time) error {
		id, err := idgen.ObjectiveID(in.Text, item.Title, div.Title, course.Name, at)
		if err != nil {
			return err
		}
		row := &domain.LearningObjective{ID: id, ItemID: item.ID, Text: in.Text, CreatedAt: at}
		if err := s.contentRepo.CreateObjective(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "learning objective")
	}
	return out, nil
}

func (s *contentService) AddMaterial(ctx context.Context, itemID string, in MaterialInput) (*domain.Material, error) {
	dbc := dbctx.New(ctx)
	item, div, course, err := s.loadItem(dbc, itemID)
	if err != nil {
		return nil, err
	}
	var meta datatypes.JSON
	if len(in.Metadata) > 0 {
		raw, err := json.Marshal(in.Metadata)
		if err != nil {
			return nil, apierr.InvalidInput(fmt.Errorf("material metadata: %w", err))
		}
		meta = datatypes.JSON(raw)
	}
	at, explicit := stampTime(s.clock, in.At)
	var out *domain.Material
	err = mint(at, explicit, func(at time.Time) error {
		id, err := idgen.MaterialID(in.Name, item.Title, div.Title, course.Name, at)
		if err != nil {
			return err
		}
		row := &domain.Material{
			ID:          id,
			ItemID:      item.ID,
			Name:        in.Name,
			ContentType: in.ContentType,
			SizeBytes:   in.SizeBytes,
			Metadata:    meta,
			CreatedAt:   at,
		}
		if err := s.contentRepo.CreateMaterial(dbc, row); err != nil {
			return err
		}
		out = row
		return nil
	})
	if err != nil {
		return nil, mapError(err, "material")
	}
	return out, nil
}

func (s *contentService) Tree(ctx context.Context, courseID string) (*CourseTree, error) {
	dbc := dbctx.New(ctx)
	course, err := s.courseRepo.GetByID(dbc, courseID)
	if err != nil {
		return nil, mapError(err, "course")
	}
	divs, err := s.contentRepo.ListDivisions(dbc, course.ID)
	if err != nil {
		return nil, mapError(err, "divisions")
	}
	divIDs := make([]string, 0, len(divs))
	for _, d := range divs {
		divIDs = append(divIDs, d.ID)
	}
	items, err := s.contentRepo.ListItems(dbc, divIDs)
	if err != nil {
		return nil, mapError(err, "items")
	}
	itemIDs := make([]string, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
	}
	objectives, err := s.contentRepo.ListObjectives(dbc, itemIDs)
	if err != nil {
		return nil, mapError(err, "learning objectives")
	}
	materials, err := s.contentRepo.ListMaterials(dbc, itemIDs)
	if err != nil {
		return nil, mapError(err, "materials")
	}

	itemNodes := make(map[string]*ItemNode, len(items))
	for _, it := range items {
		itemNodes[it.ID] = &ItemNode{Item: it, Objectives: []*domain.LearningObjective{}, Materials: []*domain.Material{}}
	}
	for _, o := range objectives {
		if n := itemNodes[o.ItemID]; n != nil {
			n.Objectives = append(n.Objectives, o)
		}
	}
	for _, m := range materials {
		if n := itemNodes[m.ItemID]; n != nil {
			n.Materials = append(n.Materials, m)
		}
	}

	tree := &CourseTree{Course: course, Divisions: make([]*DivisionNode, 0, len(divs))}
	divNodes := make(map[string]*DivisionNode, len(divs))
	for _, d := range divs {
		n := &DivisionNode{Division: d, Items: []*ItemNode{}}
		divNodes[d.ID] = n
		tree.Divisions = append(tree.Divisions, n)
	}
	for _, it := range items {
		if n := divNodes[it.DivisionID]; n != nil {
			n.Items = append(n.Items, itemNodes[it.ID])
		}
	}
	return tree, nil
}

func (s *contentService) loadDivision(dbc dbctx.Context, divisionID string) (*domain.Division, *domain.Course, error) {
	div, err := s.contentRepo.GetDivision(dbc, divisionID)
	if err != nil {
		return nil, nil, mapError(err, "division")
	}
	course, err := s.courseRepo.GetByID(dbc, div.CourseID)
	if err != nil {
		return nil, nil, mapError(err, "course")
	}
	return div, course, nil
}

func (s *contentService) loadItem(dbc dbctx.Context, itemID string) (*domain.Item, *domain.Division, *domain.Course, error) {
	item, err := s.contentRepo.GetItem(dbc, itemID)
	if err != nil {
		return nil, nil, nil, mapError(err, "item")
	}
	div, course, err := s.loadDivision(dbc, item.DivisionID)
	if err != nil {
		return nil, nil, nil, err
	}
	return item, div, course, nil
}
