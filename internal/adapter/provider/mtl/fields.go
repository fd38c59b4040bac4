package mtl

import "github.com/sawamura/stagepedia-backend/internal/domain"

// Per-family field maps. Only human-readable text travels to the
// translation service.

func AgencyFields() Fields[domain.AgencyAttrs] {
	return Fields[domain.AgencyAttrs]{
		Extract: func(a domain.AgencyAttrs) map[string]string {
			texts := map[string]string{"name": a.Name}
			if a.Description != nil {
				texts["description"] = *a.Description
			}
			return texts
		},
		Apply: func(a domain.AgencyAttrs, texts map[string]string) domain.AgencyAttrs {
			if v, ok := texts["name"]; ok {
				a.Name = v
			}
			if v, ok := texts["description"]; ok {
				a.Description = &v
			}
			return a
		},
	}
}

func GroupFields() Fields[domain.GroupAttrs] {
	return Fields[domain.GroupAttrs]{
		Extract: func(g domain.GroupAttrs) map[string]string {
			texts := map[string]string{"name": g.Name}
			if g.Description != nil {
				texts["description"] = *g.Description
			}
			return texts
		},
		Apply: func(g domain.GroupAttrs, texts map[string]string) domain.GroupAttrs {
			if v, ok := texts["name"]; ok {
				g.Name = v
			}
			if v, ok := texts["description"]; ok {
				g.Description = &v
			}
			return g
		},
	}
}

func SongFields() Fields[domain.SongAttrs] {
	return Fields[domain.SongAttrs]{
		Extract: func(s domain.SongAttrs) map[string]string {
			return map[string]string{"title": s.Title}
		},
		Apply: func(s domain.SongAttrs, texts map[string]string) domain.SongAttrs {
			if v, ok := texts["title"]; ok {
				s.Title = v
			}
			return s
		},
	}
}

func TalentFields() Fields[domain.TalentAttrs] {
	return Fields[domain.TalentAttrs]{
		Extract: func(t domain.TalentAttrs) map[string]string {
			texts := map[string]string{"name": t.Name}
			if t.Bio != nil {
				texts["bio"] = *t.Bio
			}
			return texts
		},
		Apply: func(t domain.TalentAttrs, texts map[string]string) domain.TalentAttrs {
			if v, ok := texts["name"]; ok {
				t.Name = v
			}
			if v, ok := texts["bio"]; ok {
				t.Bio = &v
			}
			return t
		},
	}
}
