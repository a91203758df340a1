package entity

// TokenId, TopicId, FileId, and ScheduleId are plain (shard, realm, num)
// triplets with no alternate addressing form, per spec.md §3. Each gets its
// own named type so call sites (and compile errors) keep the entity kinds
// distinct even though the underlying representation is shared.
type (
	TokenId    struct{ Id }
	TopicId    struct{ Id }
	FileId     struct{ Id }
	ScheduleId struct{ Id }
)

func NewTokenId(shard, realm, num uint64) TokenId       { return TokenId{New(shard, realm, num)} }
func NewTopicId(shard, realm, num uint64) TopicId       { return TopicId{New(shard, realm, num)} }
func NewFileId(shard, realm, num uint64) FileId         { return FileId{New(shard, realm, num)} }
func NewScheduleId(shard, realm, num uint64) ScheduleId { return ScheduleId{New(shard, realm, num)} }

func ParseTokenId(s string) (TokenId, error) {
	id, err := Parse(s)
	if err != nil {
		return TokenId{}, err
	}
	return TokenId{id}, nil
}

func ParseTopicId(s string) (TopicId, error) {
	id, err := Parse(s)
	if err != nil {
		return TopicId{}, err
	}
	return TopicId{id}, nil
}

func ParseFileId(s string) (FileId, error) {
	id, err := Parse(s)
	if err != nil {
		return FileId{}, err
	}
	return FileId{id}, nil
}

func ParseScheduleId(s string) (ScheduleId, error) {
	id, err := Parse(s)
	if err != nil {
		return ScheduleId{}, err
	}
	return ScheduleId{id}, nil
}
