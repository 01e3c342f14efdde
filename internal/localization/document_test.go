package localization_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/bg3-item-builder/internal/errors"
	"github.com/KirkDiggler/bg3-item-builder/internal/localization"
)

type DocumentTestSuite struct {
	suite.Suite
}

func TestDocumentSuite(t *testing.T) {
	suite.Run(t, new(DocumentTestSuite))
}

func (s *DocumentTestSuite) TestNewDocument() {
	doc := localization.New()
	doc.Append("hname", "Example armor 1")
	doc.Append("hdesc", "desc")

	data, err := doc.Bytes()
	s.Require().NoError(err)

	expected := `<?xml version="1.0" encoding="utf-8"?>
<contentList>
 <content contentuid="hname" version="1">Example armor 1</content>
 <content contentuid="hdesc" version="1">desc</content>
</contentList>`
	s.Assert().Equal(expected, strings.TrimRight(string(data), "\n"))
}

func (s *DocumentTestSuite) TestAppendToExisting() {
	existing := `<?xml version="1.0" encoding="utf-8"?>
<contentList>
    <content contentuid="hold" version="3">Old sword</content>
</contentList>`

	doc, err := localization.Parse([]byte(existing))
	s.Require().NoError(err)
	s.Assert().Equal(1, doc.Len())

	doc.Append("hnew", "New sword")

	s.Assert().Equal([]localization.Entry{
		{Handle: "hold", Version: "3", Text: "Old sword"},
		{Handle: "hnew", Version: "1", Text: "New sword"},
	}, doc.Entries())

	data, err := doc.Bytes()
	s.Require().NoError(err)
	s.Assert().Contains(string(data), "\n <content contentuid=\"hold\" version=\"3\">Old sword</content>\n")
	s.Assert().Equal(1, strings.Count(string(data), "<?xml"))
}

func (s *DocumentTestSuite) TestTextIsEscaped() {
	doc := localization.New()
	doc.Append("h1", `Fire & <Ice> "blade"`)

	data, err := doc.Bytes()
	s.Require().NoError(err)
	s.Assert().Contains(string(data), "Fire &amp; &lt;Ice&gt;")

	reparsed, err := localization.Parse(data)
	s.Require().NoError(err)
	s.Assert().Equal(`Fire & <Ice> "blade"`, reparsed.Entries()[0].Text)
}

func (s *DocumentTestSuite) TestRepeatedWritesAccumulate() {
	doc := localization.New()
	doc.Append("h1", "one")
	first, err := doc.Bytes()
	s.Require().NoError(err)

	again, err := localization.Parse(first)
	s.Require().NoError(err)
	again.Append("h2", "two")
	second, err := again.Bytes()
	s.Require().NoError(err)

	reparsed, err := localization.Parse(second)
	s.Require().NoError(err)
	s.Assert().Equal(2, reparsed.Len())
}

func (s *DocumentTestSuite) TestParseMalformed() {
	_, err := localization.Parse([]byte("<contentList>"))
	s.Require().Error(err)
	s.Assert().True(errors.IsFailedPrecondition(err))
}
