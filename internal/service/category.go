package service

import (
	"github.com/sirupsen/logrus"

	"complaint-trends-service/internal/model"
)

// categorySpec describes how one category turns fetched rows into buckets.
// Keeping these in a table keyed by the Category enum (instead of the
// string-switch the original dashboard used) means a new category cannot be
// added without defining its extraction rules.
type categorySpec struct {
	// detail reports whether the joined detail row is present. Records
	// without it are skipped, not counted.
	detail func(model.ComplaintRecord) bool

	// key extracts the grouping key. Empty means the record is skipped.
	// Keys are used verbatim: no trimming, no case folding.
	key func(model.ComplaintRecord) string

	// collect folds auxiliary fields into the bucket. Missing auxiliary
	// values are tolerated and simply omitted from the sets.
	collect func(*model.TrendBucket, model.ComplaintRecord)

	// warnOnMissingKey logs skipped records. Only Facility did this in the
	// original dashboard; the asymmetry is preserved.
	warnOnMissingKey bool
}

// categorySpecs has no entry for Other: no detail table exists for it and no
// trends are ever computed. Callers must treat a missing entry as "no
// extractor", not an error.
var categorySpecs = map[model.Category]categorySpec{
	model.CategoryFacility: {
		detail: func(c model.ComplaintRecord) bool { return c.Facility != nil },
		key:    func(c model.ComplaintRecord) string { return c.Facility.FacilityType },
		collect: func(b *model.TrendBucket, c model.ComplaintRecord) {
			if c.Facility.IssueType != "" {
				b.Issues.Add(c.Facility.IssueType)
			}
			if c.Facility.Floor != "" {
				b.Floors.Add(c.Facility.Floor)
			}
		},
		warnOnMissingKey: true,
	},
	model.CategoryAcademic: {
		detail: func(c model.ComplaintRecord) bool { return c.Academic != nil },
		key:    func(c model.ComplaintRecord) string { return c.Academic.IssueSpecification },
		collect: func(b *model.TrendBucket, c model.ComplaintRecord) {
			if c.Academic.Level != "" {
				b.Levels.Add(c.Academic.Level)
			}
		},
	},
	model.CategoryTechnical: {
		detail: func(c model.ComplaintRecord) bool { return c.Technical != nil },
		key:    func(c model.ComplaintRecord) string { return c.Technical.IssueType },
	},
	model.CategoryDisciplinary: {
		detail: func(c model.ComplaintRecord) bool { return c.Behavior != nil },
		key:    func(c model.ComplaintRecord) string { return c.Behavior.BehaviorType },
	},
	model.CategoryAdministrative: {
		detail: func(c model.ComplaintRecord) bool { return c.Administrative != nil },
		key:    func(c model.ComplaintRecord) string { return c.Administrative.Department },
	},
}

// buildBuckets folds fetched records into trend buckets and drops the ones
// below threshold. Threshold is an inclusive lower bound. Surviving buckets
// come back in first-seen order so identical inputs yield identical output.
func buildBuckets(category model.Category, spec categorySpec, records []model.ComplaintRecord, threshold int, log *logrus.Entry) []*model.TrendBucket {
	buckets := map[string]*model.TrendBucket{}
	var order []string

	for _, rec := range records {
		if !spec.detail(rec) {
			continue
		}
		key := spec.key(rec)
		if key == "" {
			if spec.warnOnMissingKey {
				log.WithFields(logrus.Fields{
					"category":     category,
					"complaint_id": rec.ComplaintID,
				}).Warn("complaint has no grouping key, skipping")
			}
			continue
		}

		b, ok := buckets[key]
		if !ok {
			b = model.NewTrendBucket(category, key)
			buckets[key] = b
			order = append(order, key)
		}
		b.Count++
		b.ComplaintIDs = append(b.ComplaintIDs, rec.ComplaintID)
		if spec.collect != nil {
			spec.collect(b, rec)
		}
	}

	out := make([]*model.TrendBucket, 0, len(order))
	for _, key := range order {
		if b := buckets[key]; b.Count >= threshold {
			out = append(out, b)
		}
	}
	return out
}
