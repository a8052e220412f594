package manager

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/venahealth/backend/libs/errors"
)

const (
	templateTypeIntakeContainer = "intake_container"
	sectionTypeQuestionList     = "section_type_question_list"
)

// Section is an ordered group of questions presented together.
type Section struct {
	ID        string
	Title     string
	Questions []*Question
}

// SkipRule excludes a question entirely (from both display and required
// answer validation) when its condition holds. Multiple rules may target
// the same question; the question is skipped if any of them fires.
type SkipRule struct {
	Condition      map[string][]string
	SkipQuestionID string

	cond condition
}

func (r *SkipRule) condition() condition {
	if r.cond == nil && len(r.Condition) > 0 {
		r.cond = newCondition(r.Condition)
	}
	return r.cond
}

// PhotoRequirement describes one photo the intake asks the patient to
// capture. Templates with no photo requirements route straight from the
// last question to review.
type PhotoRequirement struct {
	ID           string
	Label        string
	Required     bool
	Instructions string
}

// MetricsSpec names the questions whose answers feed the derived risk
// metrics for a vertical. Empty ids mean the vertical does not collect
// that input.
type MetricsSpec struct {
	HeightQuestionID     string
	WeightQuestionID     string
	WaistQuestionID      string
	SexQuestionID        string
	ConditionsQuestionID string
}

// Template is the full questionnaire definition for one vertical.
type Template struct {
	Vertical          string
	Sections          []*Section
	SkipRules         []*SkipRule
	PhotoRequirements []*PhotoRequirement
	Metrics           *MetricsSpec
}

// Questions returns every question in the template in presentation order.
func (t *Template) Questions() []*Question {
	var qs []*Question
	for _, s := range t.Sections {
		qs = append(qs, s.Questions...)
	}
	return qs
}

// Question returns the question with the provided id, or nil.
func (t *Template) Question(id string) *Question {
	for _, q := range t.Questions() {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// Validate checks the structural invariants of the template: every
// question id unique, every conditional reference pointing at an earlier
// question (no forward or circular references) and every skip target
// naming a question that exists.
func (t *Template) Validate() error {
	seen := map[string]bool{}
	for _, s := range t.Sections {
		for _, q := range s.Questions {
			if q.ID == "" {
				return errors.Errorf("section %s contains a question without an id", s.ID)
			}
			if seen[q.ID] {
				return errors.Errorf("duplicate question id %s", q.ID)
			}
			if !q.Type.Valid() {
				return errors.Errorf("question %s has unsupported type '%s'", q.ID, q.Type)
			}
			for prereq := range q.ConditionalOn {
				if !seen[prereq] {
					return errors.Errorf("question %s is conditional on '%s' which does not occur earlier in the questionnaire", q.ID, prereq)
				}
			}
			seen[q.ID] = true
		}
	}
	for _, r := range t.SkipRules {
		if !seen[r.SkipQuestionID] {
			return errors.Errorf("skip rule targets unknown question %s", r.SkipQuestionID)
		}
		for qid := range r.Condition {
			if !seen[qid] {
				return errors.Errorf("skip rule for %s references unknown question %s", r.SkipQuestionID, qid)
			}
		}
	}
	return nil
}

// ParseTemplate decodes a server supplied template payload and validates
// its invariants. The payload layout mirrors the Template structure.
func ParseTemplate(data []byte) (t *Template, err error) {
	defer func() {
		if rerr := recover(); rerr != nil {
			if _, ok := rerr.(runtime.Error); ok {
				panic(rerr)
			}
			err = errors.Errorf("unable to parse template: %v", rerr)
		}
	}()

	var jsonMap map[string]interface{}
	if err := json.Unmarshal(data, &jsonMap); err != nil {
		return nil, errors.Trace(err)
	}
	dm := dataMap(jsonMap)

	if err := dm.requiredKeys(templateTypeIntakeContainer, "vertical", "sections"); err != nil {
		return nil, errors.Trace(err)
	}

	t = &Template{
		Vertical: dm.mustGetString("vertical"),
	}

	sections, err := dm.getInterfaceSlice("sections")
	if err != nil {
		return nil, errors.Trace(err)
	}
	t.Sections = make([]*Section, len(sections))
	for i, sv := range sections {
		sm, err := getDataMap(sv)
		if err != nil {
			return nil, errors.Trace(err)
		}
		t.Sections[i], err = parseSection(sm)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	rules, err := dm.getInterfaceSlice("skip_rules")
	if err != nil {
		return nil, errors.Trace(err)
	}
	for _, rv := range rules {
		rm, err := getDataMap(rv)
		if err != nil {
			return nil, errors.Trace(err)
		}
		rule, err := parseSkipRule(rm)
		if err != nil {
			return nil, errors.Trace(err)
		}
		t.SkipRules = append(t.SkipRules, rule)
	}

	photos, err := dm.getInterfaceSlice("photo_requirements")
	if err != nil {
		return nil, errors.Trace(err)
	}
	for _, pv := range photos {
		pm, err := getDataMap(pv)
		if err != nil {
			return nil, errors.Trace(err)
		}
		if err := pm.requiredKeys("photo_requirement", "id", "label"); err != nil {
			return nil, errors.Trace(err)
		}
		t.PhotoRequirements = append(t.PhotoRequirements, &PhotoRequirement{
			ID:           pm.mustGetString("id"),
			Label:        pm.mustGetString("label"),
			Required:     pm.mustGetBool("required"),
			Instructions: pm.mustGetString("instructions"),
		})
	}

	metricsMap, err := dm.dataMapForKey("metrics")
	if err != nil {
		return nil, errors.Trace(err)
	}
	if metricsMap != nil {
		t.Metrics = &MetricsSpec{
			HeightQuestionID:     metricsMap.mustGetString("height_question_id"),
			WeightQuestionID:     metricsMap.mustGetString("weight_question_id"),
			WaistQuestionID:      metricsMap.mustGetString("waist_question_id"),
			SexQuestionID:        metricsMap.mustGetString("sex_question_id"),
			ConditionsQuestionID: metricsMap.mustGetString("conditions_question_id"),
		}
	}

	if err := t.Validate(); err != nil {
		return nil, errors.Trace(err)
	}

	return t, nil
}

func parseSection(dm dataMap) (*Section, error) {
	if err := dm.requiredKeys(sectionTypeQuestionList, "id", "title", "questions"); err != nil {
		return nil, errors.Trace(err)
	}

	s := &Section{
		ID:    dm.mustGetString("id"),
		Title: dm.mustGetString("title"),
	}

	questions, err := dm.getInterfaceSlice("questions")
	if err != nil {
		return nil, errors.Trace(err)
	}
	s.Questions = make([]*Question, len(questions))
	for i, qv := range questions {
		qm, err := getDataMap(qv)
		if err != nil {
			return nil, errors.Trace(err)
		}
		s.Questions[i], err = parseQuestion(qm)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	return s, nil
}

func parseQuestion(dm dataMap) (*Question, error) {
	if err := dm.requiredKeys("question", "question_id", "prompt", "type"); err != nil {
		return nil, errors.Trace(err)
	}

	q := &Question{
		ID:       dm.mustGetString("question_id"),
		Prompt:   dm.mustGetString("prompt"),
		Type:     QuestionType(dm.mustGetString("type")),
		Required: dm.mustGetBool("required"),
		Hint:     dm.mustGetString("hint"),
	}

	var err error
	q.Options, err = dm.getStringSlice("options")
	if err != nil {
		return nil, errors.Trace(err)
	}
	q.Min, err = dm.getFloat64Ptr("min")
	if err != nil {
		return nil, errors.Trace(err)
	}
	q.Max, err = dm.getFloat64Ptr("max")
	if err != nil {
		return nil, errors.Trace(err)
	}

	condMap, err := dm.dataMapForKey("conditional_on")
	if err != nil {
		return nil, errors.Trace(err)
	}
	if condMap != nil {
		q.ConditionalOn, err = parsePredicates(condMap)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	return q, nil
}

func parseSkipRule(dm dataMap) (*SkipRule, error) {
	if err := dm.requiredKeys("skip_rule", "condition", "skip_question_id"); err != nil {
		return nil, errors.Trace(err)
	}

	condMap, err := dm.dataMapForKey("condition")
	if err != nil {
		return nil, errors.Trace(err)
	}
	cond, err := parsePredicates(condMap)
	if err != nil {
		return nil, errors.Trace(err)
	}

	return &SkipRule{
		Condition:      cond,
		SkipQuestionID: dm.mustGetString("skip_question_id"),
	}, nil
}

// parsePredicates reads a {question id -> value or list of values} map,
// normalizing scalars into single element lists.
func parsePredicates(dm dataMap) (map[string][]string, error) {
	preds := make(map[string][]string, len(dm))
	for qid, v := range dm {
		switch val := v.(type) {
		case string:
			preds[qid] = []string{val}
		case []interface{}:
			strs := make([]string, len(val))
			for i, item := range val {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("expected string value in predicate for '%s' but got %T", qid, item)
				}
				strs[i] = s
			}
			preds[qid] = strs
		case []string:
			preds[qid] = val
		default:
			return nil, fmt.Errorf("expected value or list of values in predicate for '%s' but got %T", qid, v)
		}
	}
	return preds, nil
}
