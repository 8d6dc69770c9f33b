package course

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/solhart/guideplay/guide"
)

const sampleGuide = `# 测试课程

## 任务时间
- **总时长：30分钟**

## 操作步骤

### 第一步：看一看（5分钟）
第一段要点。

第二段补充。

#### 课堂问答
**问题1：**会了吗？
A. 会
B. 不会
**正确答案：A**

### 第二步：做一做
只有说明，没有问答。

#### 立即动手
- 完成操作

### 第三步：空空如也

#### 课堂问答
**问题1：**空步骤也有问答？
A. 有
**正确答案：A**
`

func TestBuild_StepsAndIDs(t *testing.T) {
	c, err := Build(sampleGuide)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c.Meta.Title != "测试课程" {
		t.Errorf("title = %q", c.Meta.Title)
	}
	if c.Meta.Duration != "总时长：30分钟" {
		t.Errorf("duration = %q", c.Meta.Duration)
	}
	if len(c.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(c.Steps))
	}

	for i, step := range c.Steps {
		want := "step-" + string(rune('1'+i))
		if step.ID != want {
			t.Errorf("step %d id = %q, want %q", i, step.ID, want)
		}
	}

	first := c.Steps[0]
	if first.Type != StepOperation {
		t.Errorf("first step type = %q, want operation", first.Type)
	}
	if len(first.Quiz) != 1 || first.Quiz[0].ID != "第一步：看一看（5分钟）-quiz-1" {
		t.Errorf("quiz ids = %+v", first.Quiz)
	}
	if first.Subtitle != "第一步：看一看（5分钟）（5分钟）" {
		t.Errorf("subtitle = %q", first.Subtitle)
	}
	if !strings.Contains(first.ContentHTML, "第一段要点。") {
		t.Errorf("contentHtml = %q", first.ContentHTML)
	}

	second := c.Steps[1]
	if second.Type != StepContent {
		t.Errorf("second step type = %q, want content", second.Type)
	}
	if len(second.PracticeTasks) != 1 {
		t.Errorf("practiceTasks = %v", second.PracticeTasks)
	}
}

func TestBuild_KnowledgeCards(t *testing.T) {
	c, err := Build(sampleGuide)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Cards only for steps with summary prose; icons cycle by index.
	if c.Steps[0].KnowledgeCard == nil {
		t.Fatal("first step should have a knowledge card")
	}
	if c.Steps[0].KnowledgeCard.Icon != "💡" {
		t.Errorf("icon = %q, want 💡", c.Steps[0].KnowledgeCard.Icon)
	}
	if c.Steps[0].KnowledgeCard.Content != "第一段要点。" {
		t.Errorf("card content = %q", c.Steps[0].KnowledgeCard.Content)
	}
	if c.Steps[1].KnowledgeCard == nil || c.Steps[1].KnowledgeCard.Icon != "🔥" {
		t.Errorf("second card = %+v", c.Steps[1].KnowledgeCard)
	}
	if c.Steps[2].KnowledgeCard != nil {
		t.Errorf("summary-less step got a card: %+v", c.Steps[2].KnowledgeCard)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	a, err := Build(sampleGuide)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	b, err := Build(sampleGuide)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds of the same document differ")
	}

	// The model must survive JSON serialization.
	if _, err := json.Marshal(a); err != nil {
		t.Errorf("course not serializable: %v", err)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	if _, err := Build("   "); !errors.Is(err, guide.ErrEmptyGuide) {
		t.Errorf("err = %v, want ErrEmptyGuide", err)
	}
}

func TestStepComponents(t *testing.T) {
	c, err := Build(sampleGuide)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	components := StepComponents(c.Steps[0])
	// Summary text region plus one quiz region.
	if len(components) != 2 {
		t.Fatalf("components = %+v", components)
	}
	if components[0].Type != "text" || components[0].ID != "step-1-content" {
		t.Errorf("component 0 = %+v", components[0])
	}
	if components[1].Type != "quiz" || components[1].ID != "step-1-quiz-1" {
		t.Errorf("component 1 = %+v", components[1])
	}
	for _, comp := range components {
		if comp.Position != nil {
			t.Errorf("component %s should start unpositioned", comp.ID)
		}
	}

	// Practice-bearing step contributes a practice region.
	components = StepComponents(c.Steps[1])
	if len(components) != 2 || components[1].ID != "step-2-practice" {
		t.Errorf("second step components = %+v", components)
	}
}
