package engine

import (
	"log/slog"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/classify"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/rules"
)

const (
	reasonNoRule     = "no matching rule"
	reasonContainer  = "container"
	reasonSkipFolder = "inside skip-organization folder"
)

// planner resolves items against one immutable, normalized rule set.
type planner struct {
	cfg  *model.OrganizerConfig
	cmap CategoryMap
}

func newPlanner(cfg *model.OrganizerConfig) *planner {
	return &planner{cfg: cfg, cmap: BuildCategoryMap(cfg)}
}

// ComputePlacements resolves every item to a destination. It is pure: no
// repository access and no mutation of cfg or items. cfg must be normalized.
func ComputePlacements(cfg *model.OrganizerConfig, items []model.ItemSnapshot) *model.Plan {
	p := newPlanner(cfg)
	plan := &model.Plan{Placements: make([]model.Placement, 0, len(items))}
	for _, item := range items {
		plan.Placements = append(plan.Placements, p.place(item))
	}
	return plan
}

// resolution is the working state of one item's trip through the state
// machine before it is folded into a Placement.
type resolution struct {
	folder   *model.FolderRule
	subpath  []string
	status   model.PlacementStatus
	position int
	label    int
}

// place runs the per-item state machine: render check, classification,
// label accumulation, exception override, resolution.
func (p *planner) place(item model.ItemSnapshot) model.Placement {
	out := model.Placement{ItemID: item.ID, ItemName: item.Name, Status: model.PlacementSkipped}

	var res resolution
	if item.Kind == model.ItemKindContainer {
		// Containers are never classified; only an exception can claim one.
		out.Reason = reasonContainer
	} else {
		res = p.resolveRender(item)
		if res.folder == nil {
			res = p.resolveClassification(item)
		}
	}

	if exc := rules.ResolveException(item, p.cfg.Exceptions); exc != nil {
		if target := p.cfg.FindFolder(exc.TargetFolderID); target != nil {
			// The exception wins the folder and discards any subfolder;
			// label resolution from the classification path stands.
			res.folder = target
			res.position = p.cfg.FolderPosition(exc.TargetFolderID)
			res.subpath = nil
			res.status = model.PlacementException
		} else {
			slog.Debug("exception targets unknown folder; ignoring",
				"exception", exc.ID, "target", exc.TargetFolderID)
		}
	}

	if res.folder == nil {
		if out.Reason == "" {
			out.Reason = reasonNoRule
		}
		return out
	}

	out.Status = res.status
	out.Reason = ""
	out.FolderID = res.folder.ID
	out.LabelColor = res.label
	out.Path = append([]string{res.folder.DisplayName(res.position)}, res.subpath...)
	return out
}

// resolveRender checks every render folder in order; compositions whose name
// carries a render keyword land at that folder's root.
func (p *planner) resolveRender(item model.ItemSnapshot) resolution {
	for i := range p.cfg.Folders {
		f := &p.cfg.Folders[i]
		if rules.MatchesRenderFolder(item, f) {
			return resolution{
				folder:   f,
				position: i,
				status:   model.PlacementRender,
				label:    f.LabelColor,
			}
		}
	}
	return resolution{}
}

// resolveClassification classifies the item and builds its subfolder path.
// Sequence detection follows the Footage mapping entry that would govern
// this item, so the flag applies even to items routed through Footage's
// sequence path from elsewhere.
func (p *planner) resolveClassification(item model.ItemSnapshot) resolution {
	footage := p.cmap.Select(model.CategoryFootage, item.Name)
	detect := footage != nil && footage.Rule.DetectSequences

	cls, ok := classify.Classify(item, detect)
	if !ok {
		return resolution{}
	}

	if cls.Sequence {
		return p.resolveSequence(item, footage)
	}

	entry := p.cmap.Select(cls.Category, item.Name)
	if entry == nil {
		return resolution{}
	}

	res := resolution{
		folder:   entry.Folder,
		position: entry.Position,
		status:   model.PlacementCategory,
		subpath:  []string{categoryLeaf(entry.Rank, cls.Category)},
	}
	subs := entry.Rule.Subcategories
	if s := rules.ResolveSubcategory(item, subs); s != nil {
		res.subpath = append(res.subpath, subcategoryLeaf(s))
		res.label = firstLabel(s.LabelColor, entry.Rule.LabelColor, entry.Folder.LabelColor)
		return res
	}
	if len(subs) >= 2 {
		res.subpath = append(res.subpath, othersLeaf(len(subs)))
	} else if entry.Rule.CreateSubfolders {
		if ext := classify.ItemExtension(item); ext != "" {
			res.subpath = append(res.subpath, extensionLeaf(ext))
		}
	}
	res.label = firstLabel(0, entry.Rule.LabelColor, entry.Folder.LabelColor)
	return res
}

// resolveSequence places a detected sequence frame through the Footage
// entry: subcategory filters get first refusal, then the generated
// "Sequences/{EXT} Sequence" bucket when the rule creates subfolders, else
// the bare category folder.
func (p *planner) resolveSequence(item model.ItemSnapshot, entry *MappingEntry) resolution {
	if entry == nil {
		return resolution{}
	}
	res := resolution{
		folder:   entry.Folder,
		position: entry.Position,
		status:   model.PlacementSequence,
		subpath:  []string{categoryLeaf(entry.Rank, model.CategoryFootage)},
	}
	if s := rules.ResolveSubcategory(item, entry.Rule.Subcategories); s != nil {
		res.subpath = append(res.subpath, subcategoryLeaf(s))
		res.label = firstLabel(s.LabelColor, entry.Rule.LabelColor, entry.Folder.LabelColor)
		return res
	}
	if entry.Rule.CreateSubfolders {
		if ext := classify.ItemExtension(item); ext != "" {
			res.subpath = append(res.subpath, sequenceLeaf(ext)...)
		}
	}
	res.label = firstLabel(0, entry.Rule.LabelColor, entry.Folder.LabelColor)
	return res
}

// firstLabel returns the first set label color, scanning in priority order.
func firstLabel(colors ...int) int {
	for _, c := range colors {
		if c > 0 {
			return c
		}
	}
	return 0
}
