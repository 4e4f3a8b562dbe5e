package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/viper"

	"github.com/lookingglass-go/internal/query"
	"github.com/lookingglass-go/pkg/logger"
)

// TemplateNotFoundError 命令模板缺失错误
//
// 这是设备/目录层面的配置缺陷，不是用户输入问题。
type TemplateNotFoundError struct {
	NOS       string
	Category  string
	QueryType query.Type
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no %s command template for nos %q in context %q", e.QueryType, e.NOS, e.Category)
}

// Catalog 命令模板目录
//
// 模板按 NOS → 命令类别（如 ipv4_default/ipv6_vpn）→ 查询类型三级索引，
// 在配置加载时一次构建，之后只读。
type Catalog struct {
	templates         map[string]map[string]map[query.Type]string
	targetFormatSpace map[string]bool
	restNOS           map[string]bool
}

// fileCatalog 目录文件的反序列化结构
type fileCatalog struct {
	Commands          map[string]map[string]map[string]string `mapstructure:"commands"`
	TargetFormatSpace []string                                `mapstructure:"target_format_space"`
	RESTNOS           []string                                `mapstructure:"rest_nos"`
}

// Default 返回内置命令模板目录
func Default() *Catalog {
	c := &Catalog{
		templates:         make(map[string]map[string]map[query.Type]string),
		targetFormatSpace: make(map[string]bool),
		restNOS:           make(map[string]bool),
	}

	for nos, categories := range builtinTemplates {
		c.templates[nos] = make(map[string]map[query.Type]string)
		for category, templates := range categories {
			c.templates[nos][category] = make(map[query.Type]string)
			for qt, tmpl := range templates {
				c.templates[nos][category][qt] = tmpl
			}
		}
	}
	for _, nos := range builtinTargetFormatSpace {
		c.targetFormatSpace[nos] = true
	}
	for _, nos := range builtinRESTNOS {
		c.restNOS[nos] = true
	}

	return c
}

// Load 加载命令模板目录
//
// 以内置目录为基础，用YAML文件中的条目覆盖或补充。文件不存在时
// 直接使用内置目录。
func Load(path string) (*Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Debugf("Commands file %s not found, using built-in catalog", path)
		return c, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read commands file %s: %v", path, err)
	}

	var fc fileCatalog
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("failed to parse commands file %s: %v", path, err)
	}

	if err := c.merge(&fc); err != nil {
		return nil, err
	}

	logger.Infof("Loaded command catalog from %s (%d NOS)", path, len(c.templates))
	return c, nil
}

// merge 合并文件目录到当前目录
func (c *Catalog) merge(fc *fileCatalog) error {
	for nos, categories := range fc.Commands {
		if _, ok := c.templates[nos]; !ok {
			c.templates[nos] = make(map[string]map[query.Type]string)
		}
		for category, templates := range categories {
			if _, ok := c.templates[nos][category]; !ok {
				c.templates[nos][category] = make(map[query.Type]string)
			}
			for name, tmpl := range templates {
				qt, err := query.ParseType(name)
				if err != nil {
					return fmt.Errorf("commands.%s.%s: %v", nos, category, err)
				}
				c.templates[nos][category][qt] = tmpl
			}
		}
	}

	for _, nos := range fc.TargetFormatSpace {
		c.targetFormatSpace[nos] = true
	}
	for _, nos := range fc.RESTNOS {
		c.restNOS[nos] = true
	}

	return nil
}

// Lookup 查找命令模板
//
// 缺失的组合说明该设备不支持此操作，返回 TemplateNotFoundError。
func (c *Catalog) Lookup(nos, category string, qt query.Type) (string, error) {
	if categories, ok := c.templates[nos]; ok {
		if templates, ok := categories[category]; ok {
			if tmpl, ok := templates[qt]; ok {
				return tmpl, nil
			}
		}
	}
	return "", &TemplateNotFoundError{NOS: nos, Category: category, QueryType: qt}
}

// RequiresSpacedTarget 检查 NOS 是否要求前缀中的 / 替换为空格
//
// 部分设备的 CLI 解析器将 / 保留给其他语法，前缀目标必须改写后
// 才能嵌入命令行。
func (c *Catalog) RequiresSpacedTarget(nos string) bool {
	return c.targetFormatSpace[nos]
}

// TransportFor 返回 NOS 的默认传输方式
func (c *Catalog) TransportFor(nos string) query.Transport {
	if c.restNOS[nos] {
		return query.TransportAPI
	}
	return query.TransportCLI
}

// NOSNames 返回目录中的 NOS 列表（排序后）
func (c *Catalog) NOSNames() []string {
	names := make([]string, 0, len(c.templates))
	for nos := range c.templates {
		names = append(names, nos)
	}
	sort.Strings(names)
	return names
}
