package service

import (
	"context"
	"sort"
	"strings"

	"github.com/lshigami/trivia/internal/model"
	"gorm.io/gorm"
)

type fakeQuestionRepo struct {
	questions map[uint]model.Question
	nextID    uint
	err       error // returned by every call when set
	deleteErr error
}

func newFakeQuestionRepo(questions ...model.Question) *fakeQuestionRepo {
	r := &fakeQuestionRepo{questions: map[uint]model.Question{}, nextID: 1}
	for _, q := range questions {
		r.questions[q.ID] = q
		if q.ID >= r.nextID {
			r.nextID = q.ID + 1
		}
	}
	return r
}

func (r *fakeQuestionRepo) sorted(keep func(model.Question) bool) []model.Question {
	out := []model.Question{}
	for _, q := range r.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeQuestionRepo) Create(_ context.Context, q *model.Question) error {
	if r.err != nil {
		return r.err
	}
	q.ID = r.nextID
	r.nextID++
	r.questions[q.ID] = *q
	return nil
}

func (r *fakeQuestionRepo) FindByID(_ context.Context, id uint) (*model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	q, ok := r.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r *fakeQuestionRepo) FindAll(_ context.Context) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(model.Question) bool { return true }), nil
}

func (r *fakeQuestionRepo) FindByCategory(_ context.Context, categoryID uint) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.sorted(func(q model.Question) bool { return q.Category == categoryID }), nil
}

func (r *fakeQuestionRepo) Search(_ context.Context, term string) ([]model.Question, error) {
	if r.err != nil {
		return nil, r.err
	}
	term = strings.ToLower(term)
	return r.sorted(func(q model.Question) bool { return strings.Contains(strings.ToLower(q.Question), term) }), nil
}

func (r *fakeQuestionRepo) Delete(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.questions, id)
	return nil
}

type fakeCategoryRepo struct {
	categories []model.Category
	err        error
}

func (r *fakeCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.categories, nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*model.Category, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, err := r.FindByID(ctx, id)
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return err == nil, err
}

type fakeDrafter struct {
	draft        *QuestionDraft
	err          error
	gotCategory  string
	gotDifficult int
}

func (d *fakeDrafter) DraftQuestion(_ context.Context, category string, difficulty int) (*QuestionDraft, error) {
	d.gotCategory = category
	d.gotDifficult = difficulty
	return d.draft, d.err
}

func triviaCategories() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: []model.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}}
}

func triviaQuestions() *fakeQuestionRepo {
	return newFakeQuestionRepo(
		model.Question{ID: 10, Question: "What is H2O?", Answer: "Water", Category: 1, Difficulty: 1},
		model.Question{ID: 11, Question: "What is the symbol for gold?", Answer: "Au", Category: 1, Difficulty: 2},
		model.Question{ID: 12, Question: "Who painted Guernica?", Answer: "Picasso", Category: 2, Difficulty: 3},
	)
}
