package dao

import "gorm.io/gorm"

// Corpus groups the read paths the chat context assembler needs into one
// value.
type Corpus struct {
	*MeetingDAO
	*TranscriptDAO
	*SummaryDAO
	*ActionItemDAO
}

func NewCorpus(db *gorm.DB) *Corpus {
	return &Corpus{
		MeetingDAO:    NewMeetingDAO(db),
		TranscriptDAO: NewTranscriptDAO(db),
		SummaryDAO:    NewSummaryDAO(db),
		ActionItemDAO: NewActionItemDAO(db),
	}
}
