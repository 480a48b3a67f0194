package filestore

import "github.com/itchan-dev/filestate/shared/domain"

// ReducePublicLink keeps the most recently received public link.
func ReducePublicLink(state domain.PublicLink, e Event) domain.PublicLink {
	switch e := e.(type) {
	case PublicLinkReceived:
		return e.Link
	case LogoutSucceeded:
		return domain.PublicLink{}
	default:
		return state
	}
}
