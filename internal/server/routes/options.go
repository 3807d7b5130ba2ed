package routes

import "github.com/corposcope/backend/pkg/network"

// buildOptionsBody carries the optional build knobs of a request.
// Absent fields fall back to the defaults.
type buildOptionsBody struct {
	MaxDepth        *int  `json:"max_depth" validate:"omitempty,min=1,max=3"`
	IncludeOfficers *bool `json:"include_officers"`
	IncludePSCs     *bool `json:"include_pscs"`
	IncludeInactive *bool `json:"include_inactive"`
	CenterCompany   *bool `json:"center_company"`
}

func (b *buildOptionsBody) toBuildOptions() network.BuildOptions {
	opts := network.DefaultBuildOptions()
	if b == nil {
		return opts
	}
	if b.MaxDepth != nil {
		opts.MaxDepth = *b.MaxDepth
	}
	if b.IncludeOfficers != nil {
		opts.IncludeOfficers = *b.IncludeOfficers
	}
	if b.IncludePSCs != nil {
		opts.IncludePSCs = *b.IncludePSCs
	}
	if b.IncludeInactive != nil {
		opts.IncludeInactive = *b.IncludeInactive
	}
	if b.CenterCompany != nil {
		opts.CenterCompany = *b.CenterCompany
	}
	return opts
}
