package middleware

import (
	"bytes"
	"crypto/sha512"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/stores/kv"

	"NFTMarketLedger/src/errcode"
	"NFTMarketLedger/src/xhttp"
)

const CacheApiPrefix = "apicache:"

type responseCache struct {
	Status int
	Header http.Header
	Data   []byte
}

// CacheApi 响应缓存中间件:命中且业务码为成功时直接回放,未命中则在成功响应后写入
func CacheApi(store kv.Store, expireSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var data xhttp.Response
		bodyLogWrite := &BodyLogWrite{ResponseWriter: c.Writer, body: bytes.NewBufferString("")}
		c.Writer = bodyLogWrite

		//生成缓存key
		cacheKey := CreateKey(c)
		if cacheKey == "" {
			xhttp.Error(c, errcode.NewCustomErr("cache error:no cache"))
			c.Abort()
		}
		//尝试获取缓存数据
		cacheData, err := store.Get(cacheKey)
		if err == nil && cacheData != "" {
			cache := unserialize(cacheData)
			if cache != nil {
				bodyLogWrite.ResponseWriter.WriteHeader(cache.Status)
				for k, vals := range cache.Header {
					for _, v := range vals {
						bodyLogWrite.ResponseWriter.Header().Set(k, v)
					}
				}
				if err := json.Unmarshal(cache.Data, &data); err == nil {
					if data.Code == errcode.CodeOK {
						bodyLogWrite.ResponseWriter.Write(cache.Data)
						c.Abort()
					}
				}
			}
		}
		//若缓存中没有,则继续处理请求
		c.Next()
		//成功响应写入缓存
		responseBody := bodyLogWrite.body.Bytes()
		if err := json.Unmarshal(responseBody, &data); err == nil {
			if data.Code == errcode.CodeOK {
				storeCache := responseCache{
					Header: bodyLogWrite.Header().Clone(),
					Status: bodyLogWrite.ResponseWriter.Status(),
					Data:   responseBody,
				}
				store.SetnxEx(cacheKey, serialize(storeCache), expireSeconds)
			}
		}
	}
}

// CreateKey 由路径+查询串+请求体组合缓存key,过长时走SHA512
func CreateKey(c *gin.Context) string {
	var buf bytes.Buffer
	reader := io.TeeReader(c.Request.Body, &buf)
	reqBody, _ := io.ReadAll(reader)
	c.Request.Body = io.NopCloser(&buf)

	path := c.Request.URL.Path
	query := c.Request.URL.RawQuery
	cacheKey := path + "," + query + string(reqBody)
	if len(cacheKey) > 128 {
		hash := sha512.New()
		hash.Write([]byte(cacheKey))
		cacheKey = string(hash.Sum([]byte("")))
		cacheKey = fmt.Sprintf("%x", cacheKey)
	}
	cacheKey = CacheApiPrefix + cacheKey
	return cacheKey
}

// 将结构体数据序列化
func serialize(cache responseCache) string {
	buf := new(bytes.Buffer)
	enc := gob.NewEncoder(buf)
	if err := enc.Encode(cache); err != nil {
		return ""
	}
	return buf.String()
}

// 反序列化成结构体数据
func unserialize(data string) *responseCache {
	var g1 = responseCache{}
	dec := gob.NewDecoder(bytes.NewBuffer([]byte(data)))
	if err := dec.Decode(&g1); err != nil {
		return nil
	}
	return &g1
}
