// Package validation checks TJS documents against the schema constraints
// that decoding alone does not enforce: required content, list cardinality,
// enumerations, language tags and the choice groups of the model.
package validation

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"geotjs/internal/core/apperror"
	"geotjs/internal/core/model"
	"geotjs/internal/domain/tjs10"
	"geotjs/internal/metadata"
)

// Issue is one violated constraint. Path is the slash-separated XML path
// below the validated object; attributes are prefixed with '@' and list
// indexes are zero-based.
type Issue struct {
	Path    string `json:"path"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Report is the outcome of validating one object tree.
type Report struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err returns nil for a valid report and a validation AppError listing the
// issues otherwise.
func (r Report) Err() error {
	if r.Valid {
		return nil
	}
	msg := fmt.Sprintf("document has %d schema violation(s)", len(r.Issues))
	if len(r.Issues) > 0 {
		msg = fmt.Sprintf("%s: %s %s", msg, r.Issues[0].Path, r.Issues[0].Message)
	}
	return apperror.NewValidation(msg).WithDetail("issues", r.Issues)
}

// Validator wraps a validator.Validate configured for the TJS model.
type Validator struct {
	v *validator.Validate
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns the shared Validator.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// New builds a Validator with the TJS rules registered.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(xmlFieldName)
	if err := RegisterRules(v); err != nil {
		// the rule names are constants, so this only fails on a programming error
		panic(err)
	}
	return &Validator{v: v}
}

// Validate checks obj and everything it contains.
func (v *Validator) Validate(ctx context.Context, obj model.Object) Report {
	err := v.v.StructCtx(ctx, obj)
	if err == nil {
		return Report{Valid: true}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Report{Issues: []Issue{{Rule: "invalid", Message: err.Error()}}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{
			Path:    issuePath(fe.Namespace()),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return Report{Issues: issues}
}

// RegisterRules adds the TJS tags and struct-level rules to v.
func RegisterRules(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"tjs_enum":     validEnum,
		"tjs_sections": validSections,
		"bcp47_list":   validLanguageList,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}

	for typ, rules := range structRules() {
		rules := rules
		v.RegisterStructValidation(func(sl validator.StructLevel) {
			for _, rule := range rules {
				rule(sl)
			}
		}, reflect.New(typ).Elem().Interface())
	}
	return nil
}

type enumValue interface {
	IsValid() bool
}

func validEnum(fl validator.FieldLevel) bool {
	e, ok := fl.Field().Interface().(enumValue)
	return ok && e.IsValid()
}

func validSections(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(tjs10.SectionsType)
	return ok && s.IsValid()
}

func validLanguageList(fl validator.FieldLevel) bool {
	l, ok := fl.Field().Interface().(tjs10.AcceptLanguagesType)
	if !ok {
		return false
	}
	for _, tag := range l.Tags() {
		if tag == "*" {
			continue
		}
		if _, err := language.Parse(tag); err != nil {
			return false
		}
	}
	return true
}

// xmlFieldName names fields after their XML form so that issue paths read
// like the document. Embedded groups get a leading underscore and are
// dropped from the path.
func xmlFieldName(fld reflect.StructField) string {
	if fld.Anonymous {
		return "_" + fld.Name
	}
	tag := fld.Tag.Get("xml")
	if tag == "" || tag == "-" {
		return fld.Name
	}
	parts := strings.Split(tag, ",")
	name := parts[0]
	if i := strings.LastIndexByte(name, ' '); i >= 0 {
		name = name[i+1:]
	}
	for _, opt := range parts[1:] {
		switch opt {
		case "attr":
			return "@" + name
		case "chardata":
			return "text()"
		}
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func issuePath(ns string) string {
	segs := strings.Split(ns, ".")
	out := make([]string, 0, len(segs))
	for _, s := range segs[1:] {
		if s == "" || strings.HasPrefix(s, "_") {
			continue
		}
		out = append(out, s)
	}
	return strings.Join(out, "/")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "gtefield":
		return fmt.Sprintf("must not be less than %s", fe.Param())
	case "tjs_enum":
		return fmt.Sprintf("'%v' is not a valid enumerator", fe.Value())
	case "tjs_sections":
		return fmt.Sprintf("'%v' is not a list of capabilities sections", fe.Value())
	case "bcp47_language_tag", "bcp47_list":
		return fmt.Sprintf("'%v' is not a BCP 47 language tag", fe.Value())
	case "tjs_choice":
		return fmt.Sprintf("exactly one of %s must be set", fe.Param())
	case "tjs_choice_max":
		return fmt.Sprintf("at most one of %s may be set", fe.Param())
	case "tjs_service":
		return fmt.Sprintf("service must be %s", tjs10.ServiceName)
	}
	return fmt.Sprintf("failed the %s rule", fe.Tag())
}

var bigIntPtr = reflect.TypeOf((*big.Int)(nil))

// structRules collects the struct-level checks per model type. Checks that
// apply to feature kinds run on every class; the rest are bound to the types
// that carry a choice group or cross-field constraint.
func structRules() map[reflect.Type][]func(validator.StructLevel) {
	rules := map[reflect.Type][]func(validator.StructLevel){}
	for _, id := range tjs10.Classifiers() {
		obj, err := tjs10.DefaultFactory().Create(id)
		if err != nil {
			continue
		}
		t := reflect.TypeOf(obj).Elem()
		rules[t] = append(rules[t], checkFeatures)
	}

	bind := func(rule func(validator.StructLevel), objs ...any) {
		for _, o := range objs {
			t := reflect.TypeOf(o)
			rules[t] = append(rules[t], rule)
		}
	}
	bind(oneDataClass, tjs10.ValuesType{})
	bind(oneStatus, tjs10.StatusType{})
	bind(latitudeOrder, tjs10.BoundingCoordinatesType{})
	bind(oneElement, tjs10.DocumentRoot{})
	return rules
}

// checkFeatures enforces what the field tags cannot express: non-negative
// integers, enumerated optional attributes and the fixed service name.
func checkFeatures(sl validator.StructLevel) {
	cur := sl.Current()
	for _, f := range metadata.Features(cur.Type()) {
		fv := cur.FieldByIndex(f.Index)
		name := featureName(f)

		switch {
		case f.GoType == bigIntPtr:
			if n, _ := fv.Interface().(*big.Int); n != nil && n.Sign() < 0 {
				sl.ReportError(n.String(), name, f.Name, "gte", "0")
			}
		case f.Unsettable:
			holder, ok := fv.Interface().(interface {
				IsSet() bool
				AnyValue() any
			})
			if !ok || !holder.IsSet() {
				continue
			}
			val := holder.AnyValue()
			if e, ok := val.(enumValue); ok && !e.IsValid() {
				sl.ReportError(val, name, f.Name, "tjs_enum", "")
			}
			if f.Name == "Service" && val != any(tjs10.ServiceName) {
				sl.ReportError(val, name, f.Name, "tjs_service", tjs10.ServiceName)
			}
		}
	}
}

func featureName(f metadata.FeatureDef) string {
	if f.Kind == metadata.KindAttribute {
		return "@" + f.XMLName
	}
	return f.XMLName
}

func oneDataClass(sl validator.StructLevel) {
	v := sl.Current().Interface().(tjs10.ValuesType)
	if v.Populated() != 1 {
		sl.ReportError(nil, "", "", "tjs_choice", "Nominal, Ordinal, Count, Measure")
	}
}

func oneStatus(sl validator.StructLevel) {
	s := sl.Current().Interface().(tjs10.StatusType)
	n := 0
	for _, set := range []bool{s.Accepted != nil, s.Completed != nil, s.Failed != nil} {
		if set {
			n++
		}
	}
	if n > 1 {
		sl.ReportError(nil, "", "", "tjs_choice_max", "Accepted, Completed, Failed")
	}
}

func latitudeOrder(sl validator.StructLevel) {
	b := sl.Current().Interface().(tjs10.BoundingCoordinatesType)
	if b.North.LessThan(b.South) {
		sl.ReportError(b.North.String(), "North", "North", "gtefield", "South")
	}
}

func oneElement(sl validator.StructLevel) {
	d := sl.Current().Interface().(tjs10.DocumentRoot)
	if d.Populated() != 1 {
		sl.ReportError(nil, "", "", "tjs_choice", "the root elements")
	}
}
