package service

import (
	"strconv"
	"strings"

	"github.com/inarasite/internal/kv"
)

// SiteViewsKey 保存全站累计访问数。
const SiteViewsKey = "site_total_views"

// blogViewsKeyPrefix 为单篇文章计数键的前缀，后接文章 slug。
const blogViewsKeyPrefix = "blog_views_"

// AnalyticsService 负责站点与文章维度的访问计数。
//
// 计数是未加锁的读-增-写序列：单个请求内是顺序的，但并发写入方之间可能
// 丢失增量，这是沿用的弱一致模型，不做加强。计数为 int64，达到上限后回绕。
type AnalyticsService struct {
	store *kv.Store
}

// NewAnalyticsService 创建 AnalyticsService。
func NewAnalyticsService(store *kv.Store) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// RecordSiteVisit 将全站访问数加一并返回最新值。每次页面加载都计数，
// 刷新同样计入，不做任何去重。
func (s *AnalyticsService) RecordSiteVisit() (int64, error) {
	return s.increment(SiteViewsKey)
}

// SiteVisits 返回当前的全站访问数。
func (s *AnalyticsService) SiteVisits() (int64, error) {
	return s.read(SiteViewsKey)
}

// ResetSiteVisits 清零全站访问计数。
func (s *AnalyticsService) ResetSiteVisits() error {
	return s.store.Remove(SiteViewsKey)
}

// RecordPostView 将指定文章的浏览数加一并返回最新值。
func (s *AnalyticsService) RecordPostView(slug string) (int64, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return 0, nil
	}
	return s.increment(blogViewsKeyPrefix + slug)
}

// PostViews 返回指定文章的浏览数。
func (s *AnalyticsService) PostViews(slug string) (int64, error) {
	return s.read(blogViewsKeyPrefix + strings.TrimSpace(slug))
}

func (s *AnalyticsService) increment(key string) (int64, error) {
	current, err := s.read(key)
	if err != nil {
		return 0, err
	}

	next := current + 1
	if err := s.store.Set(key, strconv.FormatInt(next, 10)); err != nil {
		return 0, err
	}
	return next, nil
}

// read 解析存储的十进制计数值，键不存在或内容异常时按 0 处理。
func (s *AnalyticsService) read(key string) (int64, error) {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	value, parseErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if parseErr != nil {
		return 0, nil
	}
	return value, nil
}
