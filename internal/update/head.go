package update

// OriginalHead captures the repository's HEAD state at the moment an update
// begins, so it can be restored exactly afterwards: either a named branch or
// a detached commit.
type OriginalHead struct {
	branch string
	commit string
}

// BranchHead returns an OriginalHead for a named branch.
func BranchHead(name string) OriginalHead {
	return OriginalHead{branch: name}
}

// DetachedHead returns an OriginalHead for a detached HEAD at the given
// commit SHA.
func DetachedHead(sha string) OriginalHead {
	return OriginalHead{commit: sha}
}

// Detached reports whether HEAD was detached when the update began.
func (h OriginalHead) Detached() bool {
	return h.branch == ""
}

// Branch returns the original branch name, or "" for a detached HEAD.
func (h OriginalHead) Branch() string {
	return h.branch
}

// Commit returns the original commit SHA for a detached HEAD, or "".
func (h OriginalHead) Commit() string {
	return h.commit
}

// Ref returns the checkout target that restores the original state: the
// branch name, or the commit SHA for a detached HEAD.
func (h OriginalHead) Ref() string {
	if h.Detached() {
		return h.commit
	}
	return h.branch
}

func (h OriginalHead) String() string {
	if h.Detached() {
		return "detached at " + h.commit
	}
	return h.branch
}
